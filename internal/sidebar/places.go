package sidebar

import "github.com/karpador/trombone/internal/place"

// ListEntry is a dynamic list supplied by the account's list collection.
type ListEntry struct {
	ID   place.ListID
	Name string
}

// PlaceholderLists stands in for the account's lists until a source
// provides them.
func PlaceholderLists() []ListEntry {
	return []ListEntry{{ID: "", Name: "frems"}}
}

// BuildPlaces returns every static place in enumeration order followed by
// lists in the order given. All badges start at zero.
func BuildPlaces(lists []ListEntry) []Item {
	kinds := place.AllStatic()
	items := make([]Item, 0, len(kinds)+len(lists))
	for _, kind := range kinds {
		items = append(items, NewItem(place.Static(kind)))
	}
	for _, entry := range lists {
		items = append(items, NewItem(place.List(entry.ID, entry.Name)))
	}
	return items
}

// NewItem builds a row for p with its grouping flag decided by kind alone:
// Explore and every list open a group.
func NewItem(p place.Place) Item {
	return Item{Place: p, Separated: startsGroup(p)}
}

func startsGroup(p place.Place) bool {
	if p.IsList() {
		return true
	}
	kind, _ := p.Kind()
	return kind == place.Explore
}
