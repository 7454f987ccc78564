package action

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/logging/events"
)

// Handler performs an action's effect.
type Handler func(Action) tea.Cmd

// Dispatcher maps registered actions to their handlers.
type Dispatcher struct {
	registry *Registry
	handlers map[string]Handler
}

// NewDispatcher creates a dispatcher with no handlers bound.
func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{registry: r, handlers: make(map[string]Handler)}
}

// Handle binds h to the qualified action name.
func (d *Dispatcher) Handle(name string, h Handler) error {
	if _, ok := d.registry.Lookup(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if h == nil {
		return fmt.Errorf("%w: nil handler for %s", ErrInvalidAction, name)
	}
	if _, dup := d.handlers[name]; dup {
		return fmt.Errorf("%w: handler for %s", ErrDuplicateAction, name)
	}
	d.handlers[name] = h
	return nil
}

// Implemented reports whether a handler is bound to the action.
func (d *Dispatcher) Implemented(a Action) bool {
	_, ok := d.handlers[a.QualifiedName()]
	return ok
}

// Dispatch runs the handler for a. Actions outside the registry are an
// error; registered actions without a handler are reported and ignored.
func (d *Dispatcher) Dispatch(a Action) (tea.Cmd, error) {
	if !d.registry.Contains(a) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, a.QualifiedName())
	}
	h, ok := d.handlers[a.QualifiedName()]
	if !ok {
		events.Action.Unimplemented(a.QualifiedName(), a.Label)
		return nil, nil
	}
	events.Action.Dispatch(a.QualifiedName())
	return h(a), nil
}
