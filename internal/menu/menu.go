package menu

import (
	"errors"
	"fmt"
)

// Item represents one entry in a context menu's action tree.
type Item struct {
	ID       string
	Label    string
	Icon     string
	Shortcut string
	Disabled bool
	Divider  bool
	Submenu  []Item
	Action   Action
}

// Action is the zero-argument callback bound to a leaf item. A nil error
// means the action completed.
type Action func() error

// Point is a position in screen coordinates.
type Point struct {
	X int
	Y int
}

// HasSubmenu reports whether the item opens a flyout instead of acting.
func (i Item) HasSubmenu() bool {
	return !i.Divider && len(i.Submenu) > 0
}

// Activatable reports whether selecting the item should run its action.
func (i Item) Activatable() bool {
	return !i.Divider && !i.Disabled && !i.HasSubmenu() && i.Action != nil
}

// Divider returns a separator entry.
func Divider(id string) Item {
	return Item{ID: id, Divider: true}
}

func noop() error { return nil }

// Validate checks the structural invariants of an action tree: dividers carry
// nothing but an ID and every non-divider leaf carries an action.
func Validate(items []Item) error {
	var errs []error
	for _, item := range items {
		if item.Divider {
			if item.Label != "" || item.Action != nil || len(item.Submenu) > 0 {
				errs = append(errs, fmt.Errorf("divider %q carries label, action or submenu", item.ID))
			}
			continue
		}
		if item.ID == "" {
			errs = append(errs, fmt.Errorf("item %q has no id", item.Label))
		}
		if len(item.Submenu) > 0 {
			if err := Validate(item.Submenu); err != nil {
				errs = append(errs, fmt.Errorf("submenu %q: %w", item.ID, err))
			}
			continue
		}
		if item.Action == nil {
			errs = append(errs, fmt.Errorf("leaf %q has no action", item.ID))
		}
	}
	return errors.Join(errs...)
}

// Find locates an item by ID anywhere in the tree.
func Find(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id && !item.Divider {
			return item, true
		}
		if found, ok := Find(item.Submenu, id); ok {
			return found, true
		}
	}
	return Item{}, false
}

// IDs flattens the top level of a tree into its identifiers, dividers included.
func IDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
