package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"cellmap/internal/textcell"
)

type cellKind uint8

const (
	kindPlain cellKind = iota
	kindMatch
	kindSelect
	kindCursor
)

func styleFor(k cellKind) lipgloss.Style {
	switch k {
	case kindCursor:
		return CursorStyle()
	case kindSelect:
		return SelectStyle()
	case kindMatch:
		return MatchStyle()
	default:
		return lipgloss.NewStyle()
	}
}

// styledRow draws rendered cells as terminal text, padded to width. kinds
// holds one entry per viewport column; a wide glyph takes the kind of its
// first column.
func styledRow(cls textcell.Classifier, cells []rune, kinds []cellKind, width int) string {
	var (
		b    strings.Builder
		run  strings.Builder
		cur  cellKind
		have bool
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur == kindPlain {
			b.WriteString(run.String())
		} else {
			b.WriteString(styleFor(cur).Render(run.String()))
		}
		run.Reset()
	}
	emit := func(k cellKind, s string) {
		if have && k != cur {
			flush()
		}
		cur, have = k, true
		run.WriteString(s)
	}
	kindAt := func(col int) cellKind {
		if col < len(kinds) {
			return kinds[col]
		}
		return kindPlain
	}

	col := 0
	for col < len(cells) && col < width {
		c := cells[col]
		if cls.Width(c) == 2 && col+1 < len(cells) && cells[col+1] == ' ' {
			emit(kindAt(col), string(c))
			col += 2
			continue
		}
		if unicode.IsControl(c) {
			c = '·'
		}
		emit(kindAt(col), string(c))
		col++
	}
	for ; col < width; col++ {
		emit(kindAt(col), " ")
	}
	flush()
	return b.String()
}

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(width int, left, right []string) string {
	w := width
	if w <= 0 {
		w = 80
	}
	base := StatusBarBase()
	var l, r string
	for i, p := range left {
		if i == 0 {
			l += ChipKeyStyle().Render(p)
			continue
		}
		l += base.Render(" " + p)
	}
	for i, p := range right {
		if i == len(right)-1 {
			r += base.Render(" ") + ChipStyle(Vitesse.Blue).Render(p)
			continue
		}
		r += base.Render(" " + p)
	}
	lw := xansi.StringWidth(l)
	rw := xansi.StringWidth(r)
	if lw+rw > w {
		// keep the right segment, cut the left one
		l = xansi.Truncate(l, max(w-rw-1, 0), "…")
		lw = xansi.StringWidth(l)
	}
	pad := max(w-lw-rw, 0)
	return l + base.Render(strings.Repeat(" ", pad)) + r
}
