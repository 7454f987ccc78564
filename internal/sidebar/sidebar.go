package sidebar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/logging/events"
	"github.com/karpador/trombone/internal/place"
)

var (
	// ErrReentrantDispatch is returned when a gesture arrives while an
	// output is still being handed to the emitter.
	ErrReentrantDispatch = errors.New("output dispatch already in progress")
	// ErrUnknownAction is returned for menu gestures naming an action that
	// is not part of the overflow menu.
	ErrUnknownAction = errors.New("action not in menu")
	// ErrInvalidAccount is returned for account switches without an id.
	ErrInvalidAccount = errors.New("invalid account")
)

// Sidebar is the single owner of the row list. Every read and mutation goes
// through it from the event loop; gestures become Outputs on the emitter.
type Sidebar struct {
	list        *List
	current     place.Place
	menu        action.Menu
	emit        Emitter
	dispatching bool
}

// New builds the sidebar with the static places plus lists, highlighting
// start.
func New(start place.StaticKind, lists []ListEntry, menu action.Menu, emit Emitter) *Sidebar {
	s := &Sidebar{
		list:    NewList(BuildPlaces(lists)),
		current: place.Static(start),
		menu:    menu,
		emit:    emit,
	}
	events.Sidebar.Build(s.list.Len(), len(lists))
	return s
}

// SetEmitter replaces the output destination.
func (s *Sidebar) SetEmitter(emit Emitter) {
	s.emit = emit
}

// Len returns the number of rows.
func (s *Sidebar) Len() int {
	return s.list.Len()
}

// Get returns row i.
func (s *Sidebar) Get(i int) (Item, error) {
	return s.list.Get(i)
}

// Items returns a snapshot of the rows.
func (s *Sidebar) Items() []Item {
	return s.list.Items()
}

// HasSeparator reports whether a group boundary is drawn above row i.
func (s *Sidebar) HasSeparator(i int) bool {
	return s.list.HasSeparator(i)
}

// Menu returns the overflow menu.
func (s *Sidebar) Menu() action.Menu {
	return s.menu
}

// Current returns the highlighted place.
func (s *Sidebar) Current() place.Place {
	return s.current
}

// CurrentIndex returns the row of the highlighted place, or -1.
func (s *Sidebar) CurrentIndex() int {
	return s.list.IndexOf(s.current)
}

// SetCurrent moves the highlight to p without emitting output.
func (s *Sidebar) SetCurrent(p place.Place) {
	s.current = p
}

// Dispatching reports whether an output is being delivered.
func (s *Sidebar) Dispatching() bool {
	return s.dispatching
}

// ActivateRow emits PlaceChanged for row i.
func (s *Sidebar) ActivateRow(i int) error {
	item, err := s.list.Get(i)
	if err != nil {
		err = fmt.Errorf("activate row: %w", err)
		events.Sidebar.Error(err)
		return err
	}
	return s.dispatch(PlaceChanged{Place: item.Place}, item.Place.Key())
}

// ActivateMenu emits MenuItemClicked for a menu entry.
func (s *Sidebar) ActivateMenu(a action.Action) error {
	if !s.menu.Contains(a) {
		err := fmt.Errorf("%w: %s", ErrUnknownAction, a.QualifiedName())
		events.Sidebar.Error(err)
		return err
	}
	return s.dispatch(MenuItemClicked{Action: a}, a.QualifiedName())
}

// RequestAddAccount emits AddAccount.
func (s *Sidebar) RequestAddAccount() error {
	return s.dispatch(AddAccount{}, "")
}

// RequestSwitchAccount emits SwitchAccount for id.
func (s *Sidebar) RequestSwitchAccount(id string) error {
	if strings.TrimSpace(id) == "" {
		err := fmt.Errorf("switch account: %w: empty id", ErrInvalidAccount)
		events.Sidebar.Error(err)
		return err
	}
	return s.dispatch(SwitchAccount{AccountID: id}, id)
}

func (s *Sidebar) dispatch(out Output, detail string) error {
	if s.dispatching {
		return fmt.Errorf("%w: %s", ErrReentrantDispatch, out.Kind())
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()
	events.Sidebar.Emit(out.Kind(), detail)
	if s.emit != nil {
		s.emit(out)
	}
	return nil
}

// Mutate runs fn against the list. It is the only way to reorder rows.
func (s *Sidebar) Mutate(fn func(*List) error) error {
	if s.dispatching {
		return fmt.Errorf("%w: mutate", ErrReentrantDispatch)
	}
	return fn(s.list)
}

// Rebuild discards every row and rebuilds from the static places and lists.
func (s *Sidebar) Rebuild(lists []ListEntry) {
	s.list.Rebuild(BuildPlaces(lists))
	events.Sidebar.Build(s.list.Len(), len(lists))
}

// SetLists reconciles the list rows with lists, touching only rows that
// differ. Rows that keep their place keep their badge.
func (s *Sidebar) SetLists(lists []ListEntry) bool {
	indices := s.listIndices()
	changed := false
	for k, entry := range lists {
		want := NewItem(place.List(entry.ID, entry.Name))
		if k < len(indices) {
			i := indices[k]
			if cur, _ := s.list.Get(i); cur.Place == want.Place {
				continue
			}
			_ = s.list.Replace(i, want)
			events.Sidebar.Mutate("replace", i)
		} else {
			s.list.Append(want)
			events.Sidebar.Mutate("append", s.list.Len()-1)
		}
		changed = true
	}
	for k := len(indices) - 1; k >= len(lists); k-- {
		_, _ = s.list.Remove(indices[k])
		events.Sidebar.Mutate("remove", indices[k])
		changed = true
	}
	return changed
}

// SetBadges applies counts keyed by place.Key. Rows without an entry drop
// to zero. Order is never touched.
func (s *Sidebar) SetBadges(counts map[string]uint64) bool {
	changed := false
	for i, item := range s.list.items {
		want := counts[item.Place.Key()]
		if item.Badge == want {
			continue
		}
		_ = s.list.SetBadge(i, want)
		changed = true
	}
	return changed
}

// Badge returns the badge count of the first row showing p.
func (s *Sidebar) Badge(p place.Place) uint64 {
	if i := s.list.IndexOf(p); i >= 0 {
		return s.list.items[i].Badge
	}
	return 0
}

func (s *Sidebar) listIndices() []int {
	var out []int
	for i, item := range s.list.items {
		if item.Place.IsList() {
			out = append(out, i)
		}
	}
	return out
}
