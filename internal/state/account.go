package state

import "strings"

// Account is a signed-in identity offered by the account switcher.
type Account struct {
	ID   string
	Name string
}

// Label returns the display name, falling back to the id.
func (a Account) Label() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return a.ID
}

type AccountStore interface {
	Entries() []Account
	SetEntries([]Account)
	Current() (Account, bool)
	SetCurrent(id string) bool
}

type accountStore struct {
	entries []Account
	current string
}

func NewAccountStore(entries []Account) AccountStore {
	s := &accountStore{}
	s.SetEntries(entries)
	return s
}

func (s *accountStore) Entries() []Account {
	return cloneAccounts(s.entries)
}

// SetEntries replaces the accounts. The current account is kept when still
// present, otherwise the first account becomes current.
func (s *accountStore) SetEntries(entries []Account) {
	s.entries = cloneAccounts(entries)
	if _, ok := s.find(s.current); ok {
		return
	}
	s.current = ""
	if len(s.entries) > 0 {
		s.current = s.entries[0].ID
	}
}

func (s *accountStore) Current() (Account, bool) {
	return s.find(s.current)
}

// SetCurrent selects the account with id, reporting whether it exists.
func (s *accountStore) SetCurrent(id string) bool {
	if _, ok := s.find(id); !ok {
		return false
	}
	s.current = id
	return true
}

func (s *accountStore) find(id string) (Account, bool) {
	if id == "" {
		return Account{}, false
	}
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Account{}, false
}

func cloneAccounts(entries []Account) []Account {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Account, len(entries))
	copy(dup, entries)
	return dup
}
