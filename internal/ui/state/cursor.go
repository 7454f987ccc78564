package state

// Cursor tracks a highlighted row and the first visible row of a scrolling
// list of Len rows.
type Cursor struct {
	Index          int
	ViewportOffset int
	count          int
}

// NewCursor returns a cursor over count rows positioned at index.
func NewCursor(count, index int) Cursor {
	c := Cursor{count: count}
	c.Set(index)
	return c
}

// Len returns the number of rows the cursor ranges over.
func (c *Cursor) Len() int {
	return c.count
}

// SetLen updates the row count, clamping the cursor into range.
func (c *Cursor) SetLen(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.clamp()
}

// Set moves the cursor to index, clamped into range.
func (c *Cursor) Set(index int) bool {
	old := c.Index
	c.Index = index
	c.clamp()
	return old != c.Index
}

// MoveUp moves the cursor one row up.
func (c *Cursor) MoveUp() bool {
	return c.moveCursorBy(-1)
}

// MoveDown moves the cursor one row down.
func (c *Cursor) MoveDown() bool {
	return c.moveCursorBy(1)
}

// MoveHome moves the cursor to the first row.
func (c *Cursor) MoveHome() bool {
	if c.count == 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	c.Index = 0
	return old != c.Index
}

// MoveEnd moves the cursor to the last row.
func (c *Cursor) MoveEnd() bool {
	if c.count == 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	c.Index = c.count - 1
	return old != c.Index
}

// MovePageUp moves the cursor up by the given page size.
func (c *Cursor) MovePageUp(maxVisible int) bool {
	return c.moveCursorBy(-c.pageSize(maxVisible))
}

// MovePageDown moves the cursor down by the given page size.
func (c *Cursor) MovePageDown(maxVisible int) bool {
	return c.moveCursorBy(c.pageSize(maxVisible))
}

func (c *Cursor) moveCursorBy(delta int) bool {
	if c.count == 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	c.Index += delta
	c.clamp()
	return c.Index != old
}

func (c *Cursor) clamp() {
	if c.count == 0 || c.Index < 0 {
		c.Index = 0
		return
	}
	if c.Index >= c.count {
		c.Index = c.count - 1
	}
}

func (c *Cursor) pageSize(maxVisible int) int {
	if c.count == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > c.count {
		size = c.count
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the viewport offset so the cursor stays visible.
func (c *Cursor) EnsureVisible(maxVisible int) {
	if c.count == 0 {
		c.Index = 0
		c.ViewportOffset = 0
		return
	}
	c.clamp()
	if maxVisible <= 0 {
		c.ViewportOffset = 0
		return
	}
	maxOffset := c.count - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.ViewportOffset > maxOffset {
		c.ViewportOffset = maxOffset
	}
	if c.ViewportOffset < 0 {
		c.ViewportOffset = 0
	}
	if c.Index < c.ViewportOffset {
		c.ViewportOffset = c.Index
	}
	if upper := c.ViewportOffset + maxVisible - 1; c.Index > upper {
		c.ViewportOffset = c.Index - maxVisible + 1
		if c.ViewportOffset > maxOffset {
			c.ViewportOffset = maxOffset
		}
	}
}

// Window returns the half-open row range visible with maxVisible rows.
func (c *Cursor) Window(maxVisible int) (int, int) {
	c.EnsureVisible(maxVisible)
	if maxVisible <= 0 || maxVisible >= c.count {
		return 0, c.count
	}
	return c.ViewportOffset, c.ViewportOffset + maxVisible
}
