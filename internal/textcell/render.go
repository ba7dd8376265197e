package textcell

import (
	"fmt"
	"strings"
)

// filler is written for tab expansion, padding, substituted runes and the
// second cell of a wide rune.
const filler = ' '

// Renderer turns a Line into the cells to display within a viewport.
// It holds no per-call state and is safe for concurrent use, though a
// single Cells must not be rendered into concurrently.
type Renderer struct {
	cls Classifier
}

// NewRenderer returns a Renderer measuring runes with cls.
func NewRenderer(cls Classifier) *Renderer {
	return &Renderer{cls: cls}
}

// Render fills out with at most maxCells cells for line, preceded by
// leftPadding blank cells. Tabs expand to tabStride blanks, a wide rune is
// followed by a blank filler cell, and a wide rune that would straddle the
// right edge is replaced by a single blank.
//
// When no cell needs transforming and out holds no owned buffer, out is
// pointed at line itself instead of copying it. Otherwise out becomes (or
// stays) owned and is grown as needed; its previous contents are discarded.
//
// The only failures are ErrTabStride and ErrAllocation. After an error out
// is released and may be reused.
func (r *Renderer) Render(line Line, leftPadding, tabStride, maxCells int, out *Cells) error {
	if tabStride < 1 {
		out.Release()
		return fmt.Errorf("render: %w (got %d)", ErrTabStride, tabStride)
	}
	if leftPadding < 0 {
		leftPadding = 0
	}
	if maxCells < 0 {
		maxCells = 0
	}

	// Size the output. This is pessimistic: a tab or wide rune near the edge
	// is counted in full even though it is truncated when filled. The fill
	// never writes past maxCells, so neither does the size.
	needed := 0
	transform := false
	if leftPadding > 0 {
		transform = true
		needed = leftPadding
	}
	for i := 0; i < len(line) && needed < maxCells; i++ {
		c := line[i]
		switch {
		case c == '\t':
			transform = true
			needed = addCells(needed, tabStride)
		case r.cls.Width(c) == 2:
			transform = true
			needed += 2
		case r.cls.Substitutes(c):
			transform = true
			needed++
		default:
			needed++
		}
	}
	needed = min(needed, maxCells)

	if !transform && out.Ownership() != Owned {
		out.borrow(line, needed)
		return nil
	}

	if !out.reserve(needed) {
		return fmt.Errorf("render: %w: %d cells", ErrAllocation, needed)
	}

	cells := out.buf
	for len(cells) < leftPadding && len(cells) < maxCells {
		cells = append(cells, filler)
	}
	for i := 0; i < len(line) && len(cells) < maxCells; i++ {
		c := line[i]
		switch {
		case c == '\t':
			for n := 0; n < tabStride && len(cells) < maxCells; n++ {
				cells = append(cells, filler)
			}
		case r.cls.Width(c) == 2:
			if len(cells)+1 < maxCells {
				cells = append(cells, c, filler)
			} else {
				cells = append(cells, filler)
			}
		case r.cls.Substitutes(c):
			cells = append(cells, filler)
		default:
			cells = append(cells, c)
		}
	}
	out.buf = cells
	return nil
}

// Terminal returns the text a terminal should be sent to draw cells. A
// terminal advances two columns for a wide rune on its own, so the filler
// cell following each wide rune is skipped.
func (r *Renderer) Terminal(cells *Cells) string {
	rs := cells.Runes()
	var b strings.Builder
	b.Grow(len(rs))
	for i := 0; i < len(rs); i++ {
		b.WriteRune(rs[i])
		if r.cls.Width(rs[i]) == 2 && i+1 < len(rs) && rs[i+1] == filler {
			i++
		}
	}
	return b.String()
}
