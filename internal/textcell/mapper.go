package textcell

import "math"

// Mapper converts between buffer offsets and display cells for a line.
// It holds no per-call state and is safe for concurrent use.
type Mapper struct {
	cls Classifier
}

// NewMapper returns a Mapper measuring runes with cls.
func NewMapper(cls Classifier) *Mapper {
	return &Mapper{cls: cls}
}

func (m *Mapper) advance(r rune, tabStride int) int {
	if r == '\t' {
		return tabStride
	}
	return m.cls.Width(r)
}

// addCells adds a non-negative n to col, saturating at math.MaxInt.
func addCells(col, n int) int {
	if col > math.MaxInt-n {
		return math.MaxInt
	}
	return col + n
}

// BufferOffset returns the offset of the first rune whose starting display
// column is at or after cell, and the number of cells between cell and that
// column. The remainder is only non-zero when cell falls inside a tab or a
// wide rune; callers decide whether to show a split cursor or round.
//
// When cell is past the rendered end of the line the result is len(line)
// with no remainder, unless allowBeyondEnd is set, in which case every cell
// past the end counts as one more rune.
//
// A tab stride below one is treated as one and a negative cell as zero.
func (m *Mapper) BufferOffset(line Line, tabStride, cell int, allowBeyondEnd bool) (offset, remainder int) {
	if tabStride < 1 {
		tabStride = 1
	}
	if cell < 0 {
		cell = 0
	}
	col := 0
	for i, r := range line {
		if col >= cell {
			return i, col - cell
		}
		col = addCells(col, m.advance(r, tabStride))
	}
	if col > cell {
		// cell is inside the last rune's span
		return len(line), col - cell
	}
	offset = cell - (col - len(line))
	if !allowBeyondEnd && offset > len(line) {
		offset = len(line)
	}
	return offset, 0
}

// DisplayCell returns the display column at which the rune at offset starts.
// Offsets past the end of the line are extrapolated one cell per rune, since
// a caret may sit beyond the text. A negative offset is treated as zero.
// Columns saturate at math.MaxInt.
func (m *Mapper) DisplayCell(line Line, tabStride, offset int) int {
	if tabStride < 1 {
		tabStride = 1
	}
	if offset < 0 {
		offset = 0
	}
	col := 0
	for i, r := range line {
		if i >= offset {
			return col
		}
		col = addCells(col, m.advance(r, tabStride))
	}
	extra := col - len(line)
	if extra > 0 {
		return addCells(offset, extra)
	}
	return offset + extra
}

// Width returns the number of cells the whole line occupies.
func (m *Mapper) Width(line Line, tabStride int) int {
	return m.DisplayCell(line, tabStride, len(line))
}
