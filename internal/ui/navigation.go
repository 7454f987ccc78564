package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Interrupt) {
		events.App.Quit("interrupt")
		return tea.Quit
	}
	for _, accel := range m.accels {
		if key.Matches(keyMsg, accel.binding) {
			return m.runAction(accel.action)
		}
	}
	switch m.mode {
	case ModeMenu:
		return m.handleMenuKey(keyMsg)
	case ModeAccounts:
		return m.handleAccountsKey(keyMsg)
	case ModeFind:
		return m.handleFindKey(keyMsg)
	case ModeHelp:
		return m.handleHelpKey(keyMsg)
	}
	return m.handleSidebarKey(keyMsg)
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveRows(m.rows.MoveUp)
	case key.Matches(msg, m.keys.Down):
		m.moveRows(m.rows.MoveDown)
	case key.Matches(msg, m.keys.PageUp):
		m.moveRows(func() bool { return m.rows.MovePageUp(m.maxVisibleRows()) })
	case key.Matches(msg, m.keys.PageDown):
		m.moveRows(func() bool { return m.rows.MovePageDown(m.maxVisibleRows()) })
	case key.Matches(msg, m.keys.Home):
		m.moveRows(m.rows.MoveHome)
	case key.Matches(msg, m.keys.End):
		m.moveRows(m.rows.MoveEnd)
	case key.Matches(msg, m.keys.Activate):
		m.activateRow(m.rows.Index)
	case key.Matches(msg, m.keys.Menu):
		m.openMenu()
	case key.Matches(msg, m.keys.Accounts):
		m.openAccounts()
	case key.Matches(msg, m.keys.Find):
		return m.openFind()
	case key.Matches(msg, m.keys.Help):
		if a, ok := m.registry.Lookup(action.GroupWindow + "." + action.KeyboardShortcuts); ok {
			return m.runAction(a)
		}
	case key.Matches(msg, m.keys.Back):
		m.errMsg = ""
		m.forceClearInfo()
	}
	return nil
}

func (m *Model) moveRows(move func() bool) {
	if move() {
		m.rows.EnsureVisible(m.maxVisibleRows())
		events.UI.Cursor("sidebar", m.rows.Index)
	}
}

// activateRow hands the row to the sidebar, which raises PlaceChanged.
func (m *Model) activateRow(i int) {
	if err := m.sidebar.ActivateRow(i); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back, m.keys.Activate, m.keys.Help) {
		m.setMode(ModeSidebar)
	}
	return nil
}
