package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/karpador/trombone/internal/backend"
	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
)

func listsEvent(lists ...sidebar.ListEntry) backendEventMsg {
	return backendEventMsg{event: backend.Event{Kind: backend.KindLists, Data: lists}}
}

func badgesEvent(badges map[string]uint64) backendEventMsg {
	return backendEventMsg{event: backend.Event{Kind: backend.KindBadges, Data: badges}}
}

func TestBackendListsEventReconcilesRows(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(listsEvent(
		sidebar.ListEntry{ID: "1", Name: "one"},
		sidebar.ListEntry{ID: "2", Name: "two"},
	))
	s := h.Model().Sidebar()
	if s.Len() != 13 {
		t.Fatalf("expected 13 rows, got %d", s.Len())
	}
	if h.Model().rows.Len() != 13 {
		t.Fatalf("expected cursor range to follow rows, got %d", h.Model().rows.Len())
	}
	item, _ := s.Get(12)
	if item.Place != place.List("2", "two") {
		t.Fatalf("expected list two last, got %v", item.Place)
	}
	if !s.HasSeparator(11) || s.HasSeparator(12) {
		t.Fatalf("expected one separator before the lists")
	}
}

func TestBackendRemovingShownListFallsBackHome(t *testing.T) {
	h := NewHarness(NewModel(Options{Start: place.Local}))
	h.Key("end", "enter")
	if !h.Model().Content().IsList() {
		t.Fatalf("expected list content")
	}
	h.Send(listsEvent(sidebar.ListEntry{ID: "9", Name: "nine"}))
	if h.Model().Content() != place.Static(place.Home) {
		t.Fatalf("expected fallback to home, got %v", h.Model().Content())
	}
	if h.Model().Sidebar().Current() != place.Static(place.Home) {
		t.Fatalf("expected current place home")
	}
}

func TestBackendBadgesEvent(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(badgesEvent(map[string]uint64{
		"notifications":           4,
		"list:":                   2,
		backend.FollowRequestsKey: 3,
	}))
	s := h.Model().Sidebar()
	if got := s.Badge(place.Static(place.Notifications)); got != 4 {
		t.Fatalf("expected notifications badge 4, got %d", got)
	}
	if got := s.Badge(place.List("", "frems")); got != 2 {
		t.Fatalf("expected list badge 2, got %d", got)
	}
	view := h.View()
	if !strings.Contains(view, "3 Follow Requests") {
		t.Fatalf("expected follow requests banner, got:\n%s", view)
	}
	if !strings.Contains(view, " 4 ") {
		t.Fatalf("expected badge label in view, got:\n%s", view)
	}
}

func TestBackendBadgeErrorAppliesAbsence(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(badgesEvent(map[string]uint64{"home": 5, backend.FollowRequestsKey: 1}))
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindBadges, Err: errors.New("feed unavailable")}})
	if got := h.Model().Sidebar().Badge(place.Static(place.Home)); got != 0 {
		t.Fatalf("expected badge cleared on error, got %d", got)
	}
	view := h.View()
	if !strings.Contains(view, "Backend: feed unavailable") {
		t.Fatalf("expected backend status, got:\n%s", view)
	}
	if strings.Contains(view, "Follow Request") {
		t.Fatalf("expected banner hidden after failure, got:\n%s", view)
	}

	h.Send(badgesEvent(map[string]uint64{}))
	if warn, _ := h.Model().hasBackendIssue(); warn {
		t.Fatalf("expected backend issue cleared after recovery")
	}
}

func TestBackendListsErrorDropsLists(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindLists, Err: errors.New("boom")}})
	if got := h.Model().Sidebar().Len(); got != 11 {
		t.Fatalf("expected only static rows, got %d", got)
	}
}

func TestBackendDoneDetachesWatcher(t *testing.T) {
	m := NewModel(Options{})
	h := NewHarness(m)
	h.Send(backendDoneMsg{})
	if h.Model().backend != nil {
		t.Fatalf("expected watcher detached")
	}
}
