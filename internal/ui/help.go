package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpIntro = `# cellmap viewer

Each row is drawn in display cells. A tab advances a fixed number of cells,
a wide rune takes two, and a glyph cut by the left edge shows as blanks.
The status bar shows the cursor's rune offset, its display cell, and the
buffer offset and remainder of the leftmost visible cell.
`

// helpMarkdown lists the bindings from keys so the page never drifts.
func helpMarkdown() string {
	var b strings.Builder
	b.WriteString(helpIntro)
	b.WriteString("\n## Keys\n\n| Key | Action |\n|---|---|\n")
	for _, group := range keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\nClick to place the cursor; drag to select.\n")
	return b.String()
}

func renderHelpCmd(width int) tea.Cmd {
	return func() tea.Msg {
		md := helpMarkdown()
		// Glamour adds a two column gutter
		wrap := width - 2
		if wrap < 20 {
			wrap = 20
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return helpRenderedMsg{width: width, out: md}
		}
		out, err := r.Render(md)
		if err != nil {
			return helpRenderedMsg{width: width, out: md}
		}
		return helpRenderedMsg{width: width, out: strings.Trim(out, "\n")}
	}
}
