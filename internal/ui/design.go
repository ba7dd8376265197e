package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the viewer color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676

	Text  lipgloss.Color // #dbd7caee
	Muted lipgloss.Color // #dedcd590

	// selection background
	Select lipgloss.Color // #3a3a3a

	// Text on accent backgrounds (e.g., chips and the cursor)
	OnAccent lipgloss.Color // #222

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse is the global design theme for the viewer.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:  lipgloss.Color("#dbd7caee"),
	Muted: lipgloss.Color("#dedcd590"),

	Select: lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// ChipKeyStyle returns a style for the left-most highlighted chip in the status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for colored nuggets in the status bar.
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// CursorStyle marks the cursor cell.
func CursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(Vitesse.Yellow)
}

// SelectStyle marks selected cells.
func SelectStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Text).Background(Vitesse.Select)
}

// MatchStyle marks runes hit by the filter.
func MatchStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Blue)
}

// ErrorStyle is used for failure notices and rows that could not be drawn.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Red)
}

// MutedStyle is used for gutter and hints.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Muted)
}
