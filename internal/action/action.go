// Package action holds the application command set: stable qualified
// identifiers, display labels, optional accelerators and the overflow menu
// layout built from them.
package action

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateAction = errors.New("duplicate action")
	ErrInvalidAction   = errors.New("invalid action")
	ErrUnknownAction   = errors.New("unknown action")
)

const (
	GroupApp    = "app"
	GroupWindow = "win"
)

// Action is a globally dispatchable command.
type Action struct {
	Ident       string
	Group       string
	Label       string
	Accelerator string
}

// QualifiedName returns "<group>.<ident>".
func (a Action) QualifiedName() string {
	return a.Group + "." + a.Ident
}

func (a Action) String() string {
	return a.QualifiedName()
}

// Registry is an immutable, ordered, validated set of actions.
type Registry struct {
	actions []Action
	byName  map[string]int
}

// NewRegistry validates defs and keeps them in the given order. Idents must
// be unique within their group; qualified names are therefore unique too.
func NewRegistry(defs ...Action) (*Registry, error) {
	r := &Registry{
		actions: make([]Action, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if err := validate(def); err != nil {
			return nil, err
		}
		name := def.QualifiedName()
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAction, name)
		}
		r.byName[name] = len(r.actions)
		r.actions = append(r.actions, def)
	}
	return r, nil
}

func validate(a Action) error {
	switch {
	case strings.TrimSpace(a.Group) == "":
		return fmt.Errorf("%w: %q has no group", ErrInvalidAction, a.Ident)
	case strings.TrimSpace(a.Ident) == "":
		return fmt.Errorf("%w: empty ident in group %q", ErrInvalidAction, a.Group)
	case strings.ContainsAny(a.Ident, ". \t") || strings.ContainsAny(a.Group, ". \t"):
		return fmt.Errorf("%w: %q contains a separator", ErrInvalidAction, a.QualifiedName())
	case strings.TrimSpace(a.Label) == "":
		return fmt.Errorf("%w: %s has no label", ErrInvalidAction, a.QualifiedName())
	}
	return nil
}

// All returns the registered actions in registration order.
func (r *Registry) All() []Action {
	dup := make([]Action, len(r.actions))
	copy(dup, r.actions)
	return dup
}

// Lookup resolves a qualified name.
func (r *Registry) Lookup(name string) (Action, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Action{}, false
	}
	return r.actions[idx], true
}

// Contains reports whether a is registered exactly as given.
func (r *Registry) Contains(a Action) bool {
	got, ok := r.Lookup(a.QualifiedName())
	return ok && got == a
}

// Accelerated returns the actions that carry a keyboard accelerator.
func (r *Registry) Accelerated() []Action {
	var out []Action
	for _, a := range r.actions {
		if a.Accelerator != "" {
			out = append(out, a)
		}
	}
	return out
}
