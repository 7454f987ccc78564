// Package place models the navigable destinations shown in the sidebar.
package place

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlace reports a place name that does not match any static kind.
var ErrUnknownPlace = errors.New("unknown place")

// ListID identifies a user-defined list. It is opaque to the client.
type ListID string

// Place is either a built-in destination or a user-defined list. Values are
// comparable; two list places are equal only when both id and name match.
type Place struct {
	kind   StaticKind
	list   ListID
	name   string
	isList bool
}

// Static wraps a built-in destination.
func Static(kind StaticKind) Place {
	return Place{kind: kind}
}

// List builds a place for a user-defined list.
func List(id ListID, name string) Place {
	return Place{list: id, name: name, isList: true}
}

// IsList reports whether p refers to a user-defined list.
func (p Place) IsList() bool {
	return p.isList
}

// Kind returns the static kind and true for built-in places.
func (p Place) Kind() (StaticKind, bool) {
	if p.isList {
		return 0, false
	}
	return p.kind, true
}

// ListID returns the list identifier; empty for static places.
func (p Place) ListID() ListID {
	return p.list
}

// Icon returns the icon identifier. Every list shares the Lists icon.
func (p Place) Icon() string {
	if p.isList {
		return Lists.Icon()
	}
	return p.kind.Icon()
}

// Title returns the display title: the static title or the list's own name.
func (p Place) Title() string {
	if p.isList {
		return p.name
	}
	return p.kind.Title()
}

func (p Place) String() string {
	return p.Title()
}

// Key renders a stable textual key, used in logs and in badge tables:
// "home", "notifications", ... for static places and "list:<id>" for lists.
func (p Place) Key() string {
	if p.isList {
		return "list:" + string(p.list)
	}
	return strings.ToLower(p.kind.Title())
}

// ParseKey is the inverse of Key for static places and list keys. A parsed
// list key carries no display name.
func ParseKey(key string) (Place, error) {
	trimmed := strings.TrimSpace(key)
	if id, ok := strings.CutPrefix(trimmed, "list:"); ok {
		return List(ListID(id), ""), nil
	}
	kind, err := ParseStaticKind(trimmed)
	if err != nil {
		return Place{}, err
	}
	return Static(kind), nil
}

// ParseStaticKind resolves a case-insensitive static place title.
func ParseStaticKind(name string) (StaticKind, error) {
	trimmed := strings.TrimSpace(name)
	for _, meta := range staticPlaces {
		if strings.EqualFold(meta.title, trimmed) {
			return meta.kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlace, name)
}
