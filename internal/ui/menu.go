package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/logging/events"
)

func (m *Model) openMenu() {
	entries := m.sidebar.Menu().Entries()
	m.menuRows.SetLen(len(entries))
	m.menuRows.MoveHome()
	m.setMode(ModeMenu)
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Menu):
		m.setMode(ModeSidebar)
	case key.Matches(msg, m.keys.Up):
		m.moveMenu(m.menuRows.MoveUp)
	case key.Matches(msg, m.keys.Down):
		m.moveMenu(m.menuRows.MoveDown)
	case key.Matches(msg, m.keys.Home):
		m.moveMenu(m.menuRows.MoveHome)
	case key.Matches(msg, m.keys.End):
		m.moveMenu(m.menuRows.MoveEnd)
	case key.Matches(msg, m.keys.Activate):
		m.activateMenuEntry(m.menuRows.Index)
	}
	return nil
}

func (m *Model) moveMenu(move func() bool) {
	if move() {
		events.UI.Cursor("menu", m.menuRows.Index)
	}
}

// activateMenuEntry closes the menu and raises MenuItemClicked for entry i.
func (m *Model) activateMenuEntry(i int) {
	entries := m.sidebar.Menu().Entries()
	if i < 0 || i >= len(entries) {
		return
	}
	m.setMode(ModeSidebar)
	if err := m.sidebar.ActivateMenu(entries[i]); err != nil {
		m.errMsg = err.Error()
	}
}
