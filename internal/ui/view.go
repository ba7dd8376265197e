package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"cellmap/internal/system"
	"cellmap/internal/textcell"
	appver "cellmap/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}
	if m.showHelp {
		out := m.helpOut
		if out == "" {
			out = "rendering help…"
		}
		lines := strings.Split(out, "\n")
		if limit := m.height - 1; len(lines) > limit {
			lines = lines[:limit]
		}
		return strings.Join(lines, "\n") + "\n" + MutedStyle().Render("press ? or esc to close")
	}

	var b strings.Builder
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBarLine())
	b.WriteString("\n")
	if m.notice != "" && m.failed {
		b.WriteString(ErrorStyle().Render(m.notice))
	} else if m.notice != "" {
		b.WriteString(MutedStyle().Render(m.notice))
	} else {
		b.WriteString(m.help.View(keys))
	}
	return zone.Scan(b.String())
}

// renderBody draws the line-number gutter and the visible text rows.
func (m model) renderBody() string {
	left, top, width, height := m.view.Viewport()
	gw := m.gutterWidth()
	gutter := make([]string, height)
	rows := make([]string, height)
	kinds := make([]cellKind, width)
	for row := range height {
		n := top + row
		if n < m.view.LineCount() {
			gutter[row] = MutedStyle().Render(fmt.Sprintf("%*d ", gw-1, n+1))
		} else {
			gutter[row] = strings.Repeat(" ", gw)
		}
		m.rowKinds(n, left, kinds)
		// a fresh Cells lets plain rows borrow the line
		var cells textcell.Cells
		if err := m.view.RenderRow(row, &cells); err != nil {
			system.Logger.Debug("row not drawn", "line", n+1, "err", err)
			gutter[row] = ErrorStyle().Render(fmt.Sprintf("%*s ", gw-1, "!"))
			rows[row] = styledRow(m.cls, nil, kinds, width)
			continue
		}
		rows[row] = styledRow(m.cls, cells.Runes(), kinds, width)
	}
	text := zone.Mark(textZone, strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(gutter, "\n"), text)
}

// rowKinds fills kinds with the highlight of each viewport column on buffer
// line n.
func (m model) rowKinds(n, left int, kinds []cellKind) {
	for i := range kinds {
		kinds[i] = kindPlain
	}
	if n >= m.view.LineCount() {
		return
	}
	line := m.view.Line(n)
	mapper := m.view.Mapper()
	tab := m.view.TabStride()
	mark := func(from, to int, k cellKind) {
		for c := max(from-left, 0); c < min(to-left, len(kinds)); c++ {
			kinds[c] = k
		}
	}
	for _, r := range m.matches {
		if r.Index != n {
			continue
		}
		for _, ri := range r.Runes {
			mark(mapper.DisplayCell(line, tab, ri), mapper.DisplayCell(line, tab, ri+1), kindMatch)
		}
	}
	if s, e, ok := m.view.SelectionSpan(n); ok {
		mark(s, e, kindSelect)
	}
	if cur := m.view.Cursor(); cur.Line == n {
		c := m.view.CursorCell()
		mark(c, c+1, kindCursor)
	}
}

// renderStatusBarLine shows the file, the cursor and the scroll mapping.
func (m model) renderStatusBarLine() string {
	v := m.view
	cur := v.Cursor()
	left, _, _, _ := v.Viewport()
	line := v.Line(cur.Line)
	off, rem := v.Mapper().BufferOffset(line, v.TabStride(), left, false)

	name := "[stdin]"
	if m.path != "" {
		name = filepath.Base(m.path)
	}
	leftParts := []string{
		name,
		fmt.Sprintf("Ln %d, Ch %d", cur.Line+1, cur.Char),
		fmt.Sprintf("Cell %d", v.CursorCell()),
		fmt.Sprintf("Left %d→%d+%d", left, off, rem),
	}
	rightParts := []string{fmt.Sprintf("tab %d", v.TabStride())}
	if len(m.matches) > 0 {
		rightParts = append(rightParts, fmt.Sprintf("%d hits", len(m.matches)))
	}
	rightParts = append(rightParts, "v"+appver.AppVersion)
	return renderStatusBar(m.width, leftParts, rightParts)
}
