package dispatcher

import (
	"github.com/karpador/trombone/internal/backend"
	"github.com/karpador/trombone/internal/logging/events"
	"github.com/karpador/trombone/internal/sidebar"
)

type Result struct {
	ListsUpdated  bool
	BadgesUpdated bool
}

// Dispatcher applies backend events to the sidebar. A failed fetch is
// applied as absence: no lists, or every badge at zero.
type Dispatcher struct {
	sidebar *sidebar.Sidebar
}

func New(s *sidebar.Sidebar) *Dispatcher {
	return &Dispatcher{sidebar: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindLists:
		lists, _ := evt.Data.([]sidebar.ListEntry)
		if evt.Err != nil {
			lists = nil
		}
		res.ListsUpdated = d.sidebar.SetLists(lists)
		events.Backend.Applied(evt.Kind.String(), res.ListsUpdated)
	case backend.KindBadges:
		badges, _ := evt.Data.(map[string]uint64)
		if evt.Err != nil {
			badges = nil
		}
		res.BadgesUpdated = d.sidebar.SetBadges(badges)
		events.Backend.Applied(evt.Kind.String(), res.BadgesUpdated)
	}
	return res
}
