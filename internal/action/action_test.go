package action

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultRegistryQualifiedNames(t *testing.T) {
	r, _, err := Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	seen := make(map[string]map[string]struct{})
	for _, a := range r.All() {
		if got, want := a.QualifiedName(), a.Group+"."+a.Ident; got != want {
			t.Fatalf("expected qualified name %q, got %q", want, got)
		}
		if seen[a.Group] == nil {
			seen[a.Group] = make(map[string]struct{})
		}
		if _, dup := seen[a.Group][a.Ident]; dup {
			t.Fatalf("duplicate ident %q in group %q", a.Ident, a.Group)
		}
		seen[a.Group][a.Ident] = struct{}{}
	}
	quit, ok := r.Lookup("app.quit")
	if !ok {
		t.Fatalf("expected app.quit to be registered")
	}
	if quit.Accelerator != QuitAccelerator {
		t.Fatalf("expected quit accelerator %q, got %q", QuitAccelerator, quit.Accelerator)
	}
	accelerated := r.Accelerated()
	if len(accelerated) != 1 || accelerated[0] != quit {
		t.Fatalf("expected only quit to carry an accelerator, got %#v", accelerated)
	}
	for _, name := range []string{"app.compose", "app.refresh", "win.show-help-overlay"} {
		if _, ok := r.Lookup(name); !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		Action{Ident: "quit", Group: "app", Label: "Quit"},
		Action{Ident: "quit", Group: "app", Label: "Quit again"},
	)
	if !errors.Is(err, ErrDuplicateAction) {
		t.Fatalf("expected ErrDuplicateAction, got %v", err)
	}
	if _, err := NewRegistry(
		Action{Ident: "quit", Group: "app", Label: "Quit"},
		Action{Ident: "quit", Group: "win", Label: "Close"},
	); err != nil {
		t.Fatalf("same ident in different groups should be allowed: %v", err)
	}
}

func TestNewRegistryRejectsMalformed(t *testing.T) {
	cases := []Action{
		{Ident: "", Group: "app", Label: "x"},
		{Ident: "x", Group: "", Label: "x"},
		{Ident: "a.b", Group: "app", Label: "x"},
		{Ident: "x", Group: "app", Label: " "},
	}
	for _, tc := range cases {
		if _, err := NewRegistry(tc); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction for %#v, got %v", tc, err)
		}
	}
}

func TestDefaultMenuSections(t *testing.T) {
	_, menu, err := Default()
	if err != nil {
		t.Fatalf("default menu: %v", err)
	}
	want := [][]string{
		{"app.compose", "app.open-current-account-profile", "app.refresh"},
		{"app.open-announcements", "app.open-follow-requests", "app.open-mutes-blocks", "app.open-draft-posts", "app.open-scheduled-posts"},
		{"app.open-preferences", "win.show-help-overlay", "app.about", "app.quit"},
	}
	if len(menu.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(menu.Sections))
	}
	for i, section := range menu.Sections {
		if len(section) != len(want[i]) {
			t.Fatalf("section %d: expected %d entries, got %d", i, len(want[i]), len(section))
		}
		for j, a := range section {
			if a.QualifiedName() != want[i][j] {
				t.Fatalf("section %d entry %d: expected %s, got %s", i, j, want[i][j], a.QualifiedName())
			}
		}
	}
	if menu.SectionStart(0) {
		t.Fatalf("first entry must not open a separated section")
	}
	if !menu.SectionStart(3) || !menu.SectionStart(8) {
		t.Fatalf("expected sections to start at 3 and 8")
	}
	if menu.SectionStart(4) {
		t.Fatalf("entry 4 is inside the second section")
	}
}

func TestSectionStartSkipsEmptySections(t *testing.T) {
	a := Action{Ident: "a", Group: GroupApp, Label: "A"}
	b := Action{Ident: "b", Group: GroupApp, Label: "B"}
	menu := Menu{Sections: []Section{{}, {a}, {}, {b}}}
	if menu.SectionStart(0) {
		t.Fatalf("first visible entry must not open a separated section")
	}
	if !menu.SectionStart(1) {
		t.Fatalf("expected entry after an empty section to open a section")
	}
	if menu.SectionStart(2) {
		t.Fatalf("index past the last entry is not a section start")
	}
}

func TestBuildMenuRejectsUnknownEntry(t *testing.T) {
	r, err := NewRegistry(Action{Ident: "quit", Group: "app", Label: "Quit"})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if _, err := BuildMenu(r, [][]string{{"app.quit", "app.nope"}}); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if _, err := BuildMenu(r, [][]string{{"app.quit"}, {"app.quit"}}); !errors.Is(err, ErrDuplicateAction) {
		t.Fatalf("expected ErrDuplicateAction, got %v", err)
	}
}

type quitMsg struct{}

func TestDispatcherRunsHandler(t *testing.T) {
	r, _, err := Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	d := NewDispatcher(r)
	calls := 0
	if err := d.Handle("app.quit", func(Action) tea.Cmd {
		calls++
		return func() tea.Msg { return quitMsg{} }
	}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	quit, _ := r.Lookup("app.quit")
	cmd, err := d.Dispatch(quit)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	if cmd == nil {
		t.Fatalf("expected command from quit handler")
	}
	if _, ok := cmd().(quitMsg); !ok {
		t.Fatalf("expected quitMsg")
	}
}

func TestDispatcherUnimplementedIsNotFatal(t *testing.T) {
	r, _, err := Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	d := NewDispatcher(r)
	compose, _ := r.Lookup("app.compose")
	cmd, err := d.Dispatch(compose)
	if err != nil {
		t.Fatalf("unimplemented action must not error: %v", err)
	}
	if cmd != nil {
		t.Fatalf("unimplemented action must not produce a command")
	}
	if d.Implemented(compose) {
		t.Fatalf("compose has no handler")
	}
}

func TestDispatcherRejectsForeignAction(t *testing.T) {
	r, _, err := Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	d := NewDispatcher(r)
	if _, err := d.Dispatch(Action{Ident: "explode", Group: "app", Label: "Explode"}); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if err := d.Handle("app.explode", func(Action) tea.Cmd { return nil }); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction binding a handler, got %v", err)
	}
	if err := d.Handle("app.quit", func(Action) tea.Cmd { return nil }); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if err := d.Handle("app.quit", func(Action) tea.Cmd { return nil }); !errors.Is(err, ErrDuplicateAction) {
		t.Fatalf("expected ErrDuplicateAction, got %v", err)
	}
}
