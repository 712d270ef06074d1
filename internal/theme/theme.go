package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header      *lipgloss.Style
	SortedHead  *lipgloss.Style
	Row         *lipgloss.Style
	RowAlt      *lipgloss.Style
	RowHover    *lipgloss.Style
	RowSelected *lipgloss.Style
	RowLocked   *lipgloss.Style
	Empty       *lipgloss.Style
	Error       *lipgloss.Style
	Info        *lipgloss.Style
	Footer      *lipgloss.Style

	MenuBorder   *lipgloss.Style
	MenuItem     *lipgloss.Style
	MenuActive   *lipgloss.Style
	MenuDisabled *lipgloss.Style
	MenuDivider  *lipgloss.Style
	MenuShortcut *lipgloss.Style
	MenuDanger   *lipgloss.Style

	Prompt      *lipgloss.Style
	PromptLabel *lipgloss.Style
	Cursor      *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	SortedHead: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	RowAlt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	RowHover: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")),
	),
	RowSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	RowLocked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	MenuBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	MenuActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MenuDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	MenuDivider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	MenuShortcut: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	MenuDanger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PromptLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

var glyphs = map[string]string{
	"edit":             "✎",
	"eye":              "◉",
	"eye-off":          "◌",
	"copy":             "⧉",
	"message-square":   "✉",
	"trash-2":          "✖",
	"chevron-up":       "▲",
	"chevron-down":     "▼",
	"filter":           "⚲",
	"group":            "▤",
	"move":             "↔",
	"refresh-cw":       "↻",
	"download":         "⤓",
	"file-text":        "≡",
	"file-spreadsheet": "▦",
	"file":             "□",
	"user":             "☺",
	"settings":         "⚙",
	"save":             "⛁",
}

// Icon maps an icon name to the glyph drawn in front of a menu label. Unknown
// names render as a blank of the same width.
func Icon(name string) string {
	if glyph, ok := glyphs[name]; ok {
		return glyph
	}
	return " "
}
