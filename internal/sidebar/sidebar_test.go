package sidebar

import (
	"errors"
	"testing"

	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/place"
)

type recorder struct {
	outputs []Output
}

func (r *recorder) emit(out Output) {
	r.outputs = append(r.outputs, out)
}

func newTestSidebar(t *testing.T, lists []ListEntry) (*Sidebar, *recorder) {
	t.Helper()
	_, menu, err := action.Default()
	if err != nil {
		t.Fatalf("default actions: %v", err)
	}
	rec := &recorder{}
	return New(place.Home, lists, menu, rec.emit), rec
}

func TestActivateRowEmitsPlaceChangedOnce(t *testing.T) {
	s, rec := newTestSidebar(t, []ListEntry{{ID: "1", Name: "A"}})
	if err := s.ActivateRow(11); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if len(rec.outputs) != 1 {
		t.Fatalf("expected one output, got %d", len(rec.outputs))
	}
	changed, ok := rec.outputs[0].(PlaceChanged)
	if !ok {
		t.Fatalf("expected PlaceChanged, got %T", rec.outputs[0])
	}
	if changed.Place != place.List("1", "A") {
		t.Fatalf("unexpected place %v", changed.Place)
	}
	if s.Dispatching() {
		t.Fatalf("sidebar must return to idle after dispatch")
	}
	if s.Current() != place.Static(place.Home) {
		t.Fatalf("activation must not change the highlight by itself")
	}
}

func TestActivateRowOutOfRangeEmitsNothing(t *testing.T) {
	s, rec := newTestSidebar(t, nil)
	err := s.ActivateRow(11)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if len(rec.outputs) != 0 {
		t.Fatalf("expected no outputs, got %#v", rec.outputs)
	}
}

func TestOutputsPreserveGestureOrder(t *testing.T) {
	s, rec := newTestSidebar(t, nil)
	quit, _ := action.MustDefault()
	quitAction, _ := quit.Lookup("app.quit")
	if err := s.ActivateRow(2); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := s.ActivateMenu(quitAction); err != nil {
		t.Fatalf("menu: %v", err)
	}
	if err := s.RequestSwitchAccount("acct-1"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := s.RequestAddAccount(); err != nil {
		t.Fatalf("add: %v", err)
	}
	kinds := []string{"place-changed", "menu-item-clicked", "switch-account", "add-account"}
	if len(rec.outputs) != len(kinds) {
		t.Fatalf("expected %d outputs, got %d", len(kinds), len(rec.outputs))
	}
	for i, kind := range kinds {
		if rec.outputs[i].Kind() != kind {
			t.Fatalf("output %d: expected %s, got %s", i, kind, rec.outputs[i].Kind())
		}
	}
	if got := rec.outputs[1].(MenuItemClicked).Action; got != quitAction {
		t.Fatalf("unexpected action %v", got)
	}
	if got := rec.outputs[2].(SwitchAccount).AccountID; got != "acct-1" {
		t.Fatalf("unexpected account %q", got)
	}
}

func TestActivateMenuRejectsForeignAction(t *testing.T) {
	s, rec := newTestSidebar(t, nil)
	err := s.ActivateMenu(action.Action{Ident: "explode", Group: "app", Label: "Explode"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if err := s.RequestSwitchAccount(" "); !errors.Is(err, ErrInvalidAccount) {
		t.Fatalf("expected ErrInvalidAccount, got %v", err)
	}
	if len(rec.outputs) != 0 {
		t.Fatalf("expected no outputs, got %#v", rec.outputs)
	}
}

func TestReentrantDispatchIsRejected(t *testing.T) {
	s, _ := newTestSidebar(t, nil)
	var nestedErr error
	var count int
	s.SetEmitter(func(Output) {
		count++
		nestedErr = s.ActivateRow(0)
	})
	if err := s.ActivateRow(1); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single delivered output, got %d", count)
	}
	if !errors.Is(nestedErr, ErrReentrantDispatch) {
		t.Fatalf("expected ErrReentrantDispatch, got %v", nestedErr)
	}
	if s.Dispatching() {
		t.Fatalf("expected idle after dispatch")
	}
}

func TestSetListsReconcilesTail(t *testing.T) {
	s, _ := newTestSidebar(t, []ListEntry{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}})
	if !s.SetBadges(map[string]uint64{"list:1": 4, "home": 2}) {
		t.Fatalf("expected badge change")
	}
	changed := s.SetLists([]ListEntry{{ID: "1", Name: "A"}, {ID: "3", Name: "C"}, {ID: "4", Name: "D"}})
	if !changed {
		t.Fatalf("expected change")
	}
	if s.Len() != 14 {
		t.Fatalf("expected 14 rows, got %d", s.Len())
	}
	if s.Badge(place.List("1", "A")) != 4 {
		t.Fatalf("unchanged list row must keep its badge")
	}
	if s.Badge(place.Static(place.Home)) != 2 {
		t.Fatalf("expected home badge 2")
	}
	if item, _ := s.Get(12); item.Place != place.List("3", "C") {
		t.Fatalf("unexpected row 12 %v", item.Place)
	}
	if s.SetLists([]ListEntry{{ID: "1", Name: "A"}, {ID: "3", Name: "C"}, {ID: "4", Name: "D"}}) {
		t.Fatalf("identical lists must be a no-op")
	}
	s.SetLists(nil)
	if s.Len() != 11 {
		t.Fatalf("expected static rows only, got %d", s.Len())
	}
	if s.HasSeparator(11) {
		t.Fatalf("no row 11 after removing lists")
	}
}

func TestSetBadgesZeroesMissing(t *testing.T) {
	s, _ := newTestSidebar(t, nil)
	s.SetBadges(map[string]uint64{"notifications": 3})
	if s.Badge(place.Static(place.Notifications)) != 3 {
		t.Fatalf("expected badge 3")
	}
	s.SetBadges(nil)
	if s.Badge(place.Static(place.Notifications)) != 0 {
		t.Fatalf("expected badge reset")
	}
}

func TestSetCurrentHighlightsWithoutOutput(t *testing.T) {
	s, rec := newTestSidebar(t, nil)
	s.SetCurrent(place.Static(place.Local))
	if s.CurrentIndex() != int(place.Local) {
		t.Fatalf("expected current index %d, got %d", place.Local, s.CurrentIndex())
	}
	if len(rec.outputs) != 0 {
		t.Fatalf("SetCurrent must not emit")
	}
}

func TestMutateRejectedWhileDispatching(t *testing.T) {
	s, _ := newTestSidebar(t, nil)
	var err error
	s.SetEmitter(func(Output) {
		err = s.Mutate(func(l *List) error { return nil })
	})
	_ = s.ActivateRow(0)
	if !errors.Is(err, ErrReentrantDispatch) {
		t.Fatalf("expected ErrReentrantDispatch, got %v", err)
	}
	if err := s.Mutate(func(l *List) error { return l.Move(0, 1) }); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if item, _ := s.Get(1); item.Place != place.Static(place.Home) {
		t.Fatalf("expected home at row 1 after move, got %v", item.Place)
	}
}
