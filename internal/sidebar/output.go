package sidebar

import (
	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/place"
)

// Output is an event the sidebar hands to its parent. Exactly one Output is
// produced per accepted gesture.
type Output interface {
	Kind() string
}

// PlaceChanged is emitted when a row is activated.
type PlaceChanged struct {
	Place place.Place
}

// AddAccount is emitted from the account switcher's add entry.
type AddAccount struct{}

// SwitchAccount is emitted when an account is picked in the switcher.
type SwitchAccount struct {
	AccountID string
}

// MenuItemClicked is emitted when an overflow menu entry is activated.
type MenuItemClicked struct {
	Action action.Action
}

func (PlaceChanged) Kind() string    { return "place-changed" }
func (AddAccount) Kind() string      { return "add-account" }
func (SwitchAccount) Kind() string   { return "switch-account" }
func (MenuItemClicked) Kind() string { return "menu-item-clicked" }

// Emitter receives outputs synchronously, in gesture order.
type Emitter func(Output)
