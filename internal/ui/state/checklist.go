package state

// Entry is one toggleable line of a Checklist.
type Entry struct {
	Key   string
	Label string
}

// Checklist is a scrolling list of toggles with a cursor. The column
// customiser uses it to pick which grid columns are shown.
type Checklist struct {
	Title          string
	Entries        []Entry
	Cursor         int
	ViewportOffset int
	// MinChecked stops the last remaining toggles from being cleared.
	MinChecked int

	checked map[string]bool
}

// NewChecklist returns a checklist with the keys in checked turned on.
func NewChecklist(title string, entries []Entry, checked []string) *Checklist {
	c := &Checklist{
		Title:   title,
		Entries: append([]Entry(nil), entries...),
		checked: make(map[string]bool, len(checked)),
	}
	for _, key := range checked {
		c.checked[key] = true
	}
	return c
}

// IsChecked reports whether key is on.
func (c *Checklist) IsChecked(key string) bool {
	return c.checked[key]
}

// Toggle flips the entry under the cursor and reports whether it changed.
// Turning off an entry is refused when it would leave fewer than
// MinChecked entries on.
func (c *Checklist) Toggle() bool {
	if c.Cursor < 0 || c.Cursor >= len(c.Entries) {
		return false
	}
	key := c.Entries[c.Cursor].Key
	if c.checked[key] {
		if len(c.CheckedKeys()) <= c.MinChecked {
			return false
		}
		delete(c.checked, key)
		return true
	}
	c.checked[key] = true
	return true
}

// CheckedKeys returns the keys that are on, in entry order.
func (c *Checklist) CheckedKeys() []string {
	out := make([]string, 0, len(c.checked))
	for _, e := range c.Entries {
		if c.checked[e.Key] {
			out = append(out, e.Key)
		}
	}
	return out
}

// MoveCursorHome moves the cursor to the first entry.
func (c *Checklist) MoveCursorHome() bool {
	if len(c.Entries) == 0 {
		c.Cursor = 0
		return false
	}
	old := c.Cursor
	c.Cursor = 0
	return old != c.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (c *Checklist) MoveCursorEnd() bool {
	n := len(c.Entries)
	if n == 0 {
		c.Cursor = 0
		return false
	}
	old := c.Cursor
	c.Cursor = n - 1
	return old != c.Cursor
}

// MoveCursor steps the cursor by delta, clamped to the list.
func (c *Checklist) MoveCursor(delta int) bool {
	if len(c.Entries) == 0 {
		c.Cursor = 0
		return false
	}
	old := c.Cursor
	c.Cursor = min(max(c.Cursor+delta, 0), len(c.Entries)-1)
	return c.Cursor != old
}

// MoveCursorPageUp and MoveCursorPageDown move by a page of maxVisible lines.
func (c *Checklist) MoveCursorPageUp(maxVisible int) bool {
	return c.MoveCursor(-c.pageSize(maxVisible))
}

func (c *Checklist) MoveCursorPageDown(maxVisible int) bool {
	return c.MoveCursor(c.pageSize(maxVisible))
}

func (c *Checklist) pageSize(maxVisible int) int {
	total := len(c.Entries)
	if maxVisible <= 0 || maxVisible > total {
		return max(total, 1)
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (c *Checklist) EnsureCursorVisible(maxVisible int) {
	if len(c.Entries) == 0 {
		c.Cursor = 0
		c.ViewportOffset = 0
		return
	}
	c.Cursor = min(max(c.Cursor, 0), len(c.Entries)-1)
	if maxVisible <= 0 {
		c.ViewportOffset = 0
		return
	}
	maxOffset := max(len(c.Entries)-maxVisible, 0)
	c.ViewportOffset = min(max(c.ViewportOffset, 0), maxOffset)
	if c.Cursor < c.ViewportOffset {
		c.ViewportOffset = c.Cursor
	}
	if upper := c.ViewportOffset + maxVisible - 1; c.Cursor > upper {
		c.ViewportOffset = min(c.Cursor-maxVisible+1, maxOffset)
	}
}

// Visible returns the entries inside the viewport starting at
// ViewportOffset.
func (c *Checklist) Visible(maxVisible int) []Entry {
	if maxVisible <= 0 || len(c.Entries) <= maxVisible {
		return c.Entries
	}
	end := min(c.ViewportOffset+maxVisible, len(c.Entries))
	return c.Entries[c.ViewportOffset:end]
}
