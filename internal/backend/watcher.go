package backend

import (
	"context"
	"sync"
	"time"

	"github.com/karpador/trombone/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindLists Kind = iota
	KindBadges
)

func (k Kind) String() string {
	switch k {
	case KindLists:
		return "lists"
	case KindBadges:
		return "badges"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll. Data holds
// []sidebar.ListEntry for KindLists and map[string]uint64 for KindBadges.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls a Source at a fixed interval and publishes events.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh []chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that polls source every interval.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.start(KindLists, func(ctx context.Context) (interface{}, error) {
		return source.FetchLists(ctx)
	})
	w.start(KindBadges, func(ctx context.Context) (interface{}, error) {
		return source.FetchBadges(ctx)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks every poller to fetch now instead of waiting for the next
// tick. Requests made while one is already pending are coalesced.
func (w *Watcher) Refresh() {
	for _, ch := range w.refresh {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) start(kind Kind, fetch func(context.Context) (interface{}, error)) {
	throttle := newThrottle(250 * time.Millisecond)
	refresh := make(chan struct{}, 1)
	w.refresh = append(w.refresh, refresh)
	w.wg.Add(1)
	go w.poll(kind, refresh, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return fetch(ctx)
	})
}

func (w *Watcher) poll(kind Kind, refresh <-chan struct{}, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		events.Backend.Fetch(kind.String(), err)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-refresh:
			if !emit() {
				return
			}
		}
	}
}
