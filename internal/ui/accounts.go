package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/logging/events"
)

const addAccountLabel = "Add Account"

// accountRowCount includes the trailing "Add Account" row.
func (m *Model) accountRowCount() int {
	return len(m.accounts.Entries()) + 1
}

func (m *Model) openAccounts() {
	entries := m.accounts.Entries()
	m.accountRows.SetLen(len(entries) + 1)
	m.accountRows.MoveHome()
	if current, ok := m.accounts.Current(); ok {
		for i, acct := range entries {
			if acct.ID == current.ID {
				m.accountRows.Set(i)
				break
			}
		}
	}
	m.setMode(ModeAccounts)
}

func (m *Model) handleAccountsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Accounts):
		m.setMode(ModeSidebar)
	case key.Matches(msg, m.keys.Up):
		m.moveAccounts(m.accountRows.MoveUp)
	case key.Matches(msg, m.keys.Down):
		m.moveAccounts(m.accountRows.MoveDown)
	case key.Matches(msg, m.keys.Home):
		m.moveAccounts(m.accountRows.MoveHome)
	case key.Matches(msg, m.keys.End):
		m.moveAccounts(m.accountRows.MoveEnd)
	case key.Matches(msg, m.keys.Activate):
		m.activateAccountRow(m.accountRows.Index)
	}
	return nil
}

func (m *Model) moveAccounts(move func() bool) {
	if move() {
		events.UI.Cursor("accounts", m.accountRows.Index)
	}
}

// activateAccountRow raises SwitchAccount for an account row, or AddAccount
// for the trailing row.
func (m *Model) activateAccountRow(i int) {
	entries := m.accounts.Entries()
	if i < 0 || i > len(entries) {
		return
	}
	m.setMode(ModeSidebar)
	var err error
	if i == len(entries) {
		err = m.sidebar.RequestAddAccount()
	} else {
		err = m.sidebar.RequestSwitchAccount(entries[i].ID)
	}
	if err != nil {
		m.errMsg = err.Error()
	}
}
