package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/logging/events"
	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
	"github.com/karpador/trombone/internal/ui/command"
)

// outputMsg carries one sidebar output to the parent handlers.
type outputMsg struct {
	out sidebar.Output
}

func (m *Model) enqueueOutput(out sidebar.Output) {
	m.outbox = append(m.outbox, out)
}

func deliverOutput(out sidebar.Output) tea.Cmd {
	return func() tea.Msg {
		return outputMsg{out: out}
	}
}

func (m *Model) handleOutputMsg(msg tea.Msg) tea.Cmd {
	delivered, ok := msg.(outputMsg)
	if !ok {
		return nil
	}
	switch out := delivered.out.(type) {
	case sidebar.PlaceChanged:
		m.showPlace(out.Place)
	case sidebar.MenuItemClicked:
		return m.bus.Execute(out.Action)
	case sidebar.SwitchAccount:
		if !m.accounts.SetCurrent(out.AccountID) {
			m.errMsg = fmt.Sprintf("Unknown account %q", out.AccountID)
			return nil
		}
		m.errMsg = ""
		if acct, ok := m.accounts.Current(); ok {
			m.setInfo(fmt.Sprintf("Switched to %s", acct.Label()))
		}
	case sidebar.AddAccount:
		events.UI.Unhandled(out.Kind())
		if m.verbose {
			m.setInfo("Adding accounts is not supported yet")
		}
	default:
		if delivered.out != nil {
			events.UI.Unhandled(delivered.out.Kind())
		}
	}
	return nil
}

// showPlace makes p the current place and the content area's subject.
func (m *Model) showPlace(p place.Place) {
	m.sidebar.SetCurrent(p)
	m.content = p
	if i := m.sidebar.CurrentIndex(); i >= 0 {
		m.rows.Set(i)
	}
	m.errMsg = ""
	events.UI.Content(p.Key(), p.Title())
}

func (m *Model) handleUnimplementedMsg(msg tea.Msg) tea.Cmd {
	notice, ok := msg.(command.Unimplemented)
	if !ok {
		return nil
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("%s is not available yet", notice.Action.Label))
	}
	return nil
}

func (m *Model) handleFailedMsg(msg tea.Msg) tea.Cmd {
	failed, ok := msg.(command.Failed)
	if !ok {
		return nil
	}
	if failed.Err != nil {
		m.errMsg = failed.Err.Error()
	}
	return nil
}
