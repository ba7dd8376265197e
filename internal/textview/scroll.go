package textview

import "cellmap/internal/textcell"

// ScrollLine renders the part of line visible in a viewport scrolled
// scrollCell cells to the right and width cells wide. A tab or wide rune cut
// by the left edge shows as blank cells.
func ScrollLine(m *textcell.Mapper, r *textcell.Renderer, line textcell.Line, tabStride, scrollCell, width int, out *textcell.Cells) error {
	off, rem := m.BufferOffset(line, tabStride, scrollCell, false)
	return r.Render(line[off:], rem, tabStride, width, out)
}

// LongestWidth returns the width in cells of the widest line.
func LongestWidth(m *textcell.Mapper, lines []textcell.Line, tabStride int) int {
	longest := 0
	for _, l := range lines {
		if w := m.Width(l, tabStride); w > longest {
			longest = w
		}
	}
	return longest
}
