package popup

import (
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
)

// Executor runs a selected action and closes the menu that offered it.
// *menu.State satisfies it for any row type.
type Executor interface {
	Execute(action menu.Action, data any)
	Close()
}

// Level identifies which box of the popup tree a point or cursor is in.
type Level int

const (
	LevelNone Level = iota
	LevelRoot
	LevelFlyout
)

// Hit is the result of hit testing a point against the popup tree.
type Hit struct {
	Level Level
	Index int
}

type flyout struct {
	parent int
	origin menu.Point
	items  []menu.Item
	active int
}

// View positions an action tree on screen and tracks hover, keyboard focus
// and the single open flyout.
type View struct {
	metrics  Metrics
	viewport Viewport
	anchor   menu.Point
	origin   menu.Point
	items    []menu.Item
	visible  bool
	active   int
	flyout   *flyout
	focus    Level
}

// New returns a hidden view using m for placement.
func New(m Metrics) *View {
	return &View{metrics: m, active: -1}
}

// Metrics returns the placement metrics.
func (v *View) Metrics() Metrics {
	return v.metrics
}

// Show positions items at anchor inside vp. Placement follows Place; the
// box is then pinned so every edge it can fit inside stays in the viewport,
// the top-left edges winning when it cannot.
func (v *View) Show(anchor menu.Point, items []menu.Item, vp Viewport) {
	v.closeFlyout()
	v.anchor = anchor
	v.viewport = vp
	v.items = items
	v.origin = Place(anchor, len(items), vp, v.metrics)
	box := boxRect(v.origin, v.metrics.MenuWidth, len(items), v.metrics)
	if over := box.Right() - vp.Width; over > 0 {
		v.origin.X -= over
	}
	if over := box.Bottom() - vp.Height; over > 0 {
		v.origin.Y -= over
	}
	v.origin.X = max(v.origin.X, 0)
	v.origin.Y = max(v.origin.Y, 0)
	v.visible = len(items) > 0
	v.active = -1
	v.focus = LevelRoot
	events.Popup.Place(anchor.X, anchor.Y, v.origin.X, v.origin.Y)
}

// Hide closes the whole tree, flyout included.
func (v *View) Hide() {
	if !v.visible {
		return
	}
	v.closeFlyout()
	v.visible = false
	v.items = nil
	v.active = -1
	v.focus = LevelNone
}

// Visible reports whether the tree is showing.
func (v *View) Visible() bool {
	return v.visible
}

// Origin returns the top-left corner of the root box.
func (v *View) Origin() menu.Point {
	return v.origin
}

// Items returns the root entries.
func (v *View) Items() []menu.Item {
	return v.items
}

// Bounds returns the root box.
func (v *View) Bounds() Rect {
	return boxRect(v.origin, v.metrics.MenuWidth, len(v.items), v.metrics)
}

// ItemRect returns the box of root entry i.
func (v *View) ItemRect(i int) Rect {
	return itemRect(v.origin, v.metrics.MenuWidth, i, v.metrics)
}

// Active returns the hovered or focused root index, -1 when none.
func (v *View) Active() int {
	return v.active
}

// Focus returns the level keyboard input currently applies to.
func (v *View) Focus() Level {
	return v.focus
}

// Flyout returns the open submenu, its origin, and the ID of its parent.
func (v *View) Flyout() (parent string, origin menu.Point, items []menu.Item, ok bool) {
	if v.flyout == nil {
		return "", menu.Point{}, nil, false
	}
	return v.items[v.flyout.parent].ID, v.flyout.origin, v.flyout.items, true
}

// FlyoutActive returns the hovered or focused flyout index, -1 when none.
func (v *View) FlyoutActive() int {
	if v.flyout == nil {
		return -1
	}
	return v.flyout.active
}

// FlyoutBounds returns the flyout box when one is open.
func (v *View) FlyoutBounds() (Rect, bool) {
	if v.flyout == nil {
		return Rect{}, false
	}
	return boxRect(v.flyout.origin, v.metrics.FlyoutWidth, len(v.flyout.items), v.metrics), true
}

func (v *View) flyoutItemRect(i int) Rect {
	return itemRect(v.flyout.origin, v.metrics.FlyoutWidth, i, v.metrics)
}

// Contains reports whether p falls inside the root box or the open flyout.
func (v *View) Contains(p menu.Point) bool {
	if !v.visible {
		return false
	}
	if v.Bounds().Contains(p) {
		return true
	}
	if r, ok := v.FlyoutBounds(); ok && r.Contains(p) {
		return true
	}
	return false
}

// HitTest resolves p to an entry. The flyout is tested first because it is
// drawn above the root box.
func (v *View) HitTest(p menu.Point) Hit {
	if !v.visible {
		return Hit{Level: LevelNone, Index: -1}
	}
	if v.flyout != nil {
		for i := range v.flyout.items {
			if v.flyoutItemRect(i).Contains(p) {
				return Hit{Level: LevelFlyout, Index: i}
			}
		}
		if r, _ := v.FlyoutBounds(); r.Contains(p) {
			return Hit{Level: LevelFlyout, Index: -1}
		}
	}
	for i := range v.items {
		if v.ItemRect(i).Contains(p) {
			return Hit{Level: LevelRoot, Index: i}
		}
	}
	if v.Bounds().Contains(p) {
		return Hit{Level: LevelRoot, Index: -1}
	}
	return Hit{Level: LevelNone, Index: -1}
}

// Hover marks root entry i as hovered. A submenu entry opens its flyout,
// replacing any other; any other entry closes the open flyout.
func (v *View) Hover(i int) {
	if !v.visible || i < 0 || i >= len(v.items) {
		return
	}
	item := v.items[i]
	if item.Divider {
		return
	}
	v.active = i
	v.focus = LevelRoot
	if v.flyout != nil && v.flyout.parent == i {
		return
	}
	v.closeFlyout()
	if item.HasSubmenu() && !item.Disabled {
		origin := FlyoutOrigin(v.ItemRect(i), v.metrics)
		v.flyout = &flyout{parent: i, origin: origin, items: item.Submenu, active: -1}
		events.Popup.FlyoutOpen(item.ID, origin.X, origin.Y)
	}
}

// HoverFlyout marks flyout entry i as hovered.
func (v *View) HoverFlyout(i int) {
	if v.flyout == nil || i < 0 || i >= len(v.flyout.items) {
		return
	}
	if v.flyout.items[i].Divider {
		return
	}
	v.flyout.active = i
	v.focus = LevelFlyout
}

// PointerMove updates hover state for a pointer at p.
func (v *View) PointerMove(p menu.Point) {
	hit := v.HitTest(p)
	switch hit.Level {
	case LevelRoot:
		v.Hover(hit.Index)
	case LevelFlyout:
		v.HoverFlyout(hit.Index)
	}
}

// PointerDown handles a press at p and reports whether it landed inside the
// tree. Presses outside are left for the host's dismissal listeners.
func (v *View) PointerDown(p menu.Point, exec Executor) bool {
	hit := v.HitTest(p)
	switch hit.Level {
	case LevelRoot:
		if hit.Index >= 0 {
			item := v.items[hit.Index]
			if item.HasSubmenu() {
				v.Hover(hit.Index)
				return true
			}
			v.Activate(item, exec)
		}
		return true
	case LevelFlyout:
		if hit.Index >= 0 {
			v.Activate(v.flyout.items[hit.Index], exec)
		}
		return true
	default:
		return false
	}
}

// Activate runs item through exec and closes the whole tree. Dividers,
// disabled entries and submenu parents are ignored.
func (v *View) Activate(item menu.Item, exec Executor) bool {
	switch {
	case item.Divider:
		return false
	case item.Disabled:
		events.Popup.Blocked(item.ID, "disabled")
		return false
	case item.HasSubmenu():
		events.Popup.Blocked(item.ID, "submenu")
		return false
	case item.Action == nil:
		events.Popup.Blocked(item.ID, "no action")
		return false
	}
	if exec != nil {
		exec.Execute(item.Action, item.ID)
		exec.Close()
	}
	v.Hide()
	return true
}

func (v *View) closeFlyout() {
	if v.flyout == nil {
		return
	}
	events.Popup.FlyoutClose(v.items[v.flyout.parent].ID)
	v.flyout = nil
	if v.focus == LevelFlyout {
		v.focus = LevelRoot
	}
}
