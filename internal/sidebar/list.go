// Package sidebar owns the ordered list of navigation rows, the separator
// and badge rules that decorate them, and the routing of user gestures to
// typed output events.
package sidebar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/karpador/trombone/internal/place"
)

// ErrIndexOutOfRange reports a row index with no corresponding item.
var ErrIndexOutOfRange = errors.New("index out of range")

// Item is one renderable sidebar row.
type Item struct {
	Place     place.Place
	Separated bool
	Badge     uint64
}

// BadgeVisible reports whether the row shows a notification badge.
func BadgeVisible(item Item) bool {
	return item.Badge > 0
}

// BadgeLabel is the badge text: the plain decimal count.
func BadgeLabel(item Item) string {
	return strconv.FormatUint(item.Badge, 10)
}

// SeparatorBefore reports whether a group boundary is drawn above row i. Only
// the immediately preceding row is consulted, so a run of separated rows gets
// a single boundary, and row 0 never has one.
func SeparatorBefore(items []Item, i int) bool {
	if i <= 0 || i >= len(items) {
		return false
	}
	return items[i].Separated && !items[i-1].Separated
}

// List is the ordered row collection. Separator flags are cached per row and
// re-derived only around the rows a mutation touches.
type List struct {
	items      []Item
	separators []bool
}

// NewList builds a list from items in display order.
func NewList(items []Item) *List {
	l := &List{}
	l.Rebuild(items)
	return l
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.items)
}

// Get returns the row at i.
func (l *List) Get(i int) (Item, error) {
	if err := l.check(i, len(l.items)); err != nil {
		return Item{}, err
	}
	return l.items[i], nil
}

// Items returns a copy of the rows in display order.
func (l *List) Items() []Item {
	dup := make([]Item, len(l.items))
	copy(dup, l.items)
	return dup
}

// HasSeparator reports the cached separator state for row i.
func (l *List) HasSeparator(i int) bool {
	if i < 0 || i >= len(l.separators) {
		return false
	}
	return l.separators[i]
}

// IndexOf returns the first row showing p, or -1.
func (l *List) IndexOf(p place.Place) int {
	for i, item := range l.items {
		if item.Place == p {
			return i
		}
	}
	return -1
}

// Rebuild replaces every row.
func (l *List) Rebuild(items []Item) {
	l.items = make([]Item, len(items))
	copy(l.items, items)
	l.separators = make([]bool, len(items))
	for i := range l.items {
		l.separators[i] = SeparatorBefore(l.items, i)
	}
}

// Append adds a row at the end.
func (l *List) Append(item Item) {
	l.items = append(l.items, item)
	l.separators = append(l.separators, false)
	l.refresh(len(l.items) - 1)
}

// Insert places item at index i, shifting later rows down. i may equal Len.
func (l *List) Insert(i int, item Item) error {
	if err := l.check(i, len(l.items)+1); err != nil {
		return err
	}
	l.items = append(l.items, Item{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.separators = append(l.separators, false)
	copy(l.separators[i+1:], l.separators[i:])
	l.refresh(i, i+1)
	return nil
}

// Remove deletes and returns the row at i.
func (l *List) Remove(i int) (Item, error) {
	if err := l.check(i, len(l.items)); err != nil {
		return Item{}, err
	}
	removed := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.separators = append(l.separators[:i], l.separators[i+1:]...)
	l.refresh(i)
	return removed, nil
}

// Move relocates the row at from so that it ends up at index to.
func (l *List) Move(from, to int) error {
	if err := l.check(from, len(l.items)); err != nil {
		return err
	}
	if err := l.check(to, len(l.items)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	item := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
		copy(l.separators[from:to], l.separators[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
		copy(l.separators[to+1:from+1], l.separators[to:from])
	}
	l.items[to] = item
	l.refresh(from, from+1, to, to+1)
	return nil
}

// SetBadge updates the badge count of row i in place.
func (l *List) SetBadge(i int, badge uint64) error {
	if err := l.check(i, len(l.items)); err != nil {
		return err
	}
	l.items[i].Badge = badge
	return nil
}

// SetSeparated updates the grouping flag of row i.
func (l *List) SetSeparated(i int, separated bool) error {
	if err := l.check(i, len(l.items)); err != nil {
		return err
	}
	l.items[i].Separated = separated
	l.refresh(i, i+1)
	return nil
}

func (l *List) refresh(indices ...int) {
	for _, i := range indices {
		if i >= 0 && i < len(l.items) {
			l.separators[i] = SeparatorBefore(l.items, i)
		}
	}
}

func (l *List) check(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	return nil
}

// Replace swaps the row at i for item.
func (l *List) Replace(i int, item Item) error {
	if err := l.check(i, len(l.items)); err != nil {
		return err
	}
	l.items[i] = item
	l.refresh(i, i+1)
	return nil
}
