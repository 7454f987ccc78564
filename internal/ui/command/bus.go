package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/logging/events"
)

// Unimplemented is delivered when an action has no handler bound.
type Unimplemented struct {
	Action action.Action
}

// Failed is delivered when an action could not be dispatched.
type Failed struct {
	Action action.Action
	Err    error
}

// Bus coordinates the execution of application actions.
type Bus struct {
	dispatcher *action.Dispatcher
}

// New initialises a command bus over the dispatcher.
func New(d *action.Dispatcher) *Bus {
	return &Bus{dispatcher: d}
}

// Execute dispatches a and wraps its effect into a Bubble Tea command while
// emitting trace logs.
func (b *Bus) Execute(a action.Action) tea.Cmd {
	id := a.QualifiedName()
	events.Command.Queue(id, a.Label)
	if b.dispatcher == nil {
		events.Command.Skip(id, a.Label)
		return nil
	}
	cmd, err := b.dispatcher.Dispatch(a)
	if err != nil {
		events.Action.Error(err)
		return func() tea.Msg { return Failed{Action: a, Err: err} }
	}
	if cmd == nil {
		if !b.dispatcher.Implemented(a) {
			events.Command.Skip(id, a.Label)
			return func() tea.Msg { return Unimplemented{Action: a} }
		}
		events.Command.NoOp(id, a.Label)
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		events.Command.Result(id, a.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
