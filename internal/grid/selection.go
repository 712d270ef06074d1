package grid

import (
	"slices"

	"github.com/atomicstack/gridmenu/internal/menu"
)

// Selection is a set of row keys. Membership follows row identity, so it
// survives scrolling, sorting and filtering.
type Selection struct {
	keys map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{keys: make(map[string]struct{})}
}

// Has reports whether key is selected.
func (s *Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Toggle flips membership of key and returns the new state.
func (s *Selection) Toggle(key string) bool {
	if s.Has(key) {
		delete(s.keys, key)
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

// Set forces membership of key.
func (s *Selection) Set(key string, selected bool) {
	if selected {
		s.keys[key] = struct{}{}
		return
	}
	delete(s.keys, key)
}

// Len returns the number of selected keys.
func (s *Selection) Len() int {
	return len(s.keys)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	for key := range s.keys {
		delete(s.keys, key)
	}
}

// Keys returns the selected keys in sorted order.
func (s *Selection) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for key := range s.keys {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Prune drops keys whose rows no longer exist.
func Prune[R menu.Row](s *Selection, rows []R) {
	if s.Len() == 0 {
		return
	}
	valid := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		valid[row.Key()] = struct{}{}
	}
	for key := range s.keys {
		if _, ok := valid[key]; !ok {
			delete(s.keys, key)
		}
	}
}

// Selected returns the selected rows in the order they appear in rows.
func Selected[R menu.Row](s *Selection, rows []R) []R {
	if s.Len() == 0 {
		return nil
	}
	out := make([]R, 0, s.Len())
	for _, row := range rows {
		if s.Has(row.Key()) {
			out = append(out, row)
		}
	}
	return out
}
