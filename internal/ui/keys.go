package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/karpador/trombone/internal/action"
)

// KeyMap defines the key bindings for the sidebar and its overlays.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Back     key.Binding

	Menu     key.Binding // Open the overflow menu.
	Accounts key.Binding // Open the account switcher.
	Find     key.Binding // Start the find-place prompt.
	Help     key.Binding

	Interrupt key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation (j/k)
// alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "last"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m", "f10"),
		key.WithHelp("m", "menu"),
	),
	Accounts: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "accounts"),
	),
	Find: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "shortcuts"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Menu, k.Accounts, k.Find, k.Help}
}

// accelerator binds an action's accelerator chord.
type accelerator struct {
	binding key.Binding
	action  action.Action
}

func acceleratorsFor(registry *action.Registry) []accelerator {
	if registry == nil {
		return nil
	}
	accelerated := registry.Accelerated()
	out := make([]accelerator, 0, len(accelerated))
	for _, a := range accelerated {
		out = append(out, accelerator{
			binding: key.NewBinding(
				key.WithKeys(a.Accelerator),
				key.WithHelp(a.Accelerator, a.Label),
			),
			action: a,
		})
	}
	return out
}
