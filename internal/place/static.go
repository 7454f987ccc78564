package place

import "fmt"

// StaticKind enumerates the built-in destinations in display order.
type StaticKind int

const (
	Home StaticKind = iota
	Notifications
	Conversations
	Search
	Favourites
	Bookmarks
	Hashtags
	Explore
	Local
	Federated
	Lists

	staticKindCount
)

type staticMeta struct {
	kind  StaticKind
	icon  string
	title string
}

// staticPlaces is indexed by StaticKind. The array length ties the table to
// the enumeration; init rejects gaps and misordered rows.
var staticPlaces = [staticKindCount]staticMeta{
	{Home, "user-home-symbolic", "Home"},
	{Notifications, "bell-outline-symbolic", "Notifications"},
	{Conversations, "mail-unread-symbolic", "Conversations"},
	{Search, "loupe-large-symbolic", "Search"},
	{Favourites, "star-outline-thick-symbolic", "Favourites"},
	{Bookmarks, "bookmark-outline-symbolic", "Bookmarks"},
	{Hashtags, "hashtag-symbolic", "Hashtags"},
	{Explore, "explore2-symbolic", "Explore"},
	{Local, "network-server-symbolic", "Local"},
	{Federated, "globe-symbolic", "Federated"},
	{Lists, "list-compact-symbolic", "Lists"},
}

func init() {
	for i, meta := range staticPlaces {
		if meta.kind != StaticKind(i) || meta.icon == "" || meta.title == "" {
			panic(fmt.Sprintf("place: incomplete metadata for static kind %d", i))
		}
	}
}

// AllStatic returns every static kind in enumeration order.
func AllStatic() []StaticKind {
	kinds := make([]StaticKind, 0, len(staticPlaces))
	for _, meta := range staticPlaces {
		kinds = append(kinds, meta.kind)
	}
	return kinds
}

// Valid reports whether k is a member of the enumeration.
func (k StaticKind) Valid() bool {
	return k >= 0 && k < staticKindCount
}

// Icon returns the icon identifier for k.
func (k StaticKind) Icon() string {
	return k.meta().icon
}

// Title returns the display title for k.
func (k StaticKind) Title() string {
	return k.meta().title
}

func (k StaticKind) String() string {
	return k.Title()
}

func (k StaticKind) meta() staticMeta {
	if !k.Valid() {
		panic(fmt.Sprintf("place: static kind %d out of range", int(k)))
	}
	return staticPlaces[k]
}
