package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/logging/events"
)

const aboutText = "Trombone, a fediverse client"

func (m *Model) bindActions() {
	bindings := []struct {
		group   string
		ident   string
		handler action.Handler
	}{
		{action.GroupApp, action.Quit, m.quitAction},
		{action.GroupApp, action.Refresh, m.refreshAction},
		{action.GroupApp, action.About, m.aboutAction},
		{action.GroupWindow, action.KeyboardShortcuts, m.shortcutsAction},
	}
	for _, b := range bindings {
		if err := m.actions.Handle(b.group+"."+b.ident, b.handler); err != nil {
			events.Action.Error(err)
		}
	}
}

func (m *Model) quitAction(action.Action) tea.Cmd {
	m.quitRequested = true
	events.App.Quit("action")
	return tea.Quit
}

func (m *Model) refreshAction(action.Action) tea.Cmd {
	if m.backend == nil {
		m.setInfo("Nothing to refresh")
		return nil
	}
	m.backend.Refresh()
	m.setInfo("Refreshing…")
	return nil
}

func (m *Model) aboutAction(action.Action) tea.Cmd {
	m.setInfo(aboutText)
	return nil
}

func (m *Model) shortcutsAction(action.Action) tea.Cmd {
	m.setMode(ModeHelp)
	return nil
}

// runAction executes a through the command bus, as the overflow menu and
// accelerators do.
func (m *Model) runAction(a action.Action) tea.Cmd {
	return m.bus.Execute(a)
}
