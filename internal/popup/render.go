package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/theme"
)

const submenuMarker = "›"

// Render draws the root box and, when open, the flyout box. Both are
// bordered blocks meant to be overlaid at Origin and the flyout origin.
func (v *View) Render(styles *theme.Styles) (root, sub string) {
	if !v.visible {
		return "", ""
	}
	root = renderBox(v.items, v.active, v.metrics.MenuWidth, v.metrics.Inset, styles)
	if v.flyout != nil {
		sub = renderBox(v.flyout.items, v.flyout.active, v.metrics.FlyoutWidth, v.metrics.Inset, styles)
	}
	return root, sub
}

// Compose overlays the rendered tree onto background.
func (v *View) Compose(background string, styles *theme.Styles) string {
	root, sub := v.Render(styles)
	if root == "" {
		return background
	}
	out := Overlay(background, root, v.origin)
	if sub != "" {
		out = Overlay(out, sub, v.flyout.origin)
	}
	return out
}

func renderBox(items []menu.Item, active, width, inset int, styles *theme.Styles) string {
	inner := width - 2*inset
	if inner < 4 {
		inner = 4
	}
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, renderItem(item, i == active, inner, styles))
	}
	body := strings.Join(lines, "\n")
	if inset > 0 && styles.MenuBorder != nil {
		return styles.MenuBorder.Render(body)
	}
	return body
}

func renderItem(item menu.Item, active bool, width int, styles *theme.Styles) string {
	if item.Divider {
		return styles.MenuDivider.Render(strings.Repeat("─", width))
	}
	right := item.Shortcut
	if item.HasSubmenu() {
		right = submenuMarker
	}
	left := " " + theme.Icon(item.Icon) + " " + item.Label
	room := width - lipgloss.Width(right) - 2
	if room < 1 {
		room = 1
		right = ""
	}
	if lipgloss.Width(left) > room {
		left = truncate.StringWithTail(left, uint(room), "…")
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 0 {
		gap = 0
	}

	style := styles.MenuItem
	switch {
	case item.Disabled:
		style = styles.MenuDisabled
	case active:
		style = styles.MenuActive
	case item.ID == "delete-row":
		style = styles.MenuDanger
	}
	if right != "" && !item.Disabled && !active {
		right = styles.MenuShortcut.Render(right)
		return style.Render(left+strings.Repeat(" ", gap)) + right + style.Render(" ")
	}
	return style.Render(left + strings.Repeat(" ", gap) + right + " ")
}

// Overlay draws box over background with its top-left corner at at. Cells of
// the box falling outside the background are dropped.
func Overlay(background, box string, at menu.Point) string {
	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")
	for i, line := range boxLines {
		row := at.Y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bg := bgLines[row]
		bgWidth := ansi.StringWidth(bg)
		boxWidth := ansi.StringWidth(line)
		if bgWidth < at.X+boxWidth {
			bg += strings.Repeat(" ", at.X+boxWidth-bgWidth)
			bgWidth = at.X + boxWidth
		}
		left := ansi.Truncate(bg, at.X, "")
		right := ansi.Cut(bg, at.X+boxWidth, bgWidth)
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
