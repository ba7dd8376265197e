// Package textview is a scrollable, cursor-aware view over lines of text.
// It composes textcell's Mapper and Renderer the way list and edit widgets
// do: horizontal scrolling, click-to-character, caret movement that keeps
// its display column, and selection extents in cells.
package textview

import (
	"strings"

	"cellmap/internal/textcell"
)

// Position addresses a rune in the buffer.
type Position struct {
	Line int
	Char int
}

// Less reports whether p comes before q.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Char < q.Char
}

// View holds the buffer, the viewport and the cursor. It is not safe for
// concurrent use.
type View struct {
	lines     []textcell.Line
	mapper    *textcell.Mapper
	renderer  *textcell.Renderer
	tabStride int

	// viewport
	left, top     int
	width, height int

	cursor Position
	// desired display column, kept across vertical moves
	wantCell int

	anchor    Position
	selecting bool
}

// New returns a View over lines using cls for widths. A tab stride below one
// is raised to one.
func New(lines []string, cls textcell.Classifier, tabStride int) *View {
	v := &View{
		mapper:   textcell.NewMapper(cls),
		renderer: textcell.NewRenderer(cls),
		width:    80,
		height:   24,
	}
	v.SetTabStride(tabStride)
	v.SetLines(lines)
	return v
}

// SplitLines splits text into lines, dropping a trailing newline and any
// carriage returns before a newline.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// SetLines replaces the buffer, keeping the cursor clamped inside it.
func (v *View) SetLines(lines []string) {
	v.lines = make([]textcell.Line, len(lines))
	for i, l := range lines {
		v.lines[i] = textcell.NewLine(l)
	}
	v.cursor = v.clamp(v.cursor)
	v.anchor = v.clamp(v.anchor)
	v.EnsureVisible()
}

// SetTabStride changes the tab stride. The cursor keeps its buffer position.
func (v *View) SetTabStride(n int) {
	if n < 1 {
		n = 1
	}
	v.tabStride = n
	v.wantCell = v.CursorCell()
}

// SetSize sets the viewport size in cells.
func (v *View) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width, v.height = width, height
	v.EnsureVisible()
}

func (v *View) TabStride() int { return v.tabStride }

func (v *View) LineCount() int { return len(v.lines) }

// Line returns the line at index i, or nil when out of range.
func (v *View) Line(i int) textcell.Line {
	if i < 0 || i >= len(v.lines) {
		return nil
	}
	return v.lines[i]
}

func (v *View) Mapper() *textcell.Mapper { return v.mapper }

func (v *View) Renderer() *textcell.Renderer { return v.renderer }

// Viewport returns the left column, top line, width and height.
func (v *View) Viewport() (left, top, width, height int) {
	return v.left, v.top, v.width, v.height
}

// Cursor returns the cursor position.
func (v *View) Cursor() Position { return v.cursor }

// CursorCell returns the display column of the cursor on its line.
func (v *View) CursorCell() int {
	return v.mapper.DisplayCell(v.Line(v.cursor.Line), v.tabStride, v.cursor.Char)
}

// RenderRow renders viewport row into out. Rows below the buffer render
// empty.
func (v *View) RenderRow(row int, out *textcell.Cells) error {
	line := v.Line(v.top + row)
	return ScrollLine(v.mapper, v.renderer, line, v.tabStride, v.left, v.width, out)
}

// LongestWidth returns the widest line in cells.
func (v *View) LongestWidth() int {
	return LongestWidth(v.mapper, v.lines, v.tabStride)
}

// CursorFromViewport resolves a viewport-relative cell to a buffer position.
// Clicks below the text resolve on the last line and report inBuffer false.
func (v *View) CursorFromViewport(x, y int) (pos Position, inBuffer bool) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	inBuffer = true
	lineIndex := v.top + y
	if lineIndex >= len(v.lines) {
		lineIndex = max(len(v.lines)-1, 0)
		inBuffer = false
	}
	char, _ := v.mapper.BufferOffset(v.Line(lineIndex), v.tabStride, v.left+x, false)
	return Position{Line: lineIndex, Char: char}, inBuffer
}

// MoveTo places the cursor at pos, clamped to the buffer.
func (v *View) MoveTo(pos Position) {
	v.cursor = v.clamp(pos)
	v.wantCell = v.CursorCell()
	v.EnsureVisible()
}

func (v *View) MoveLeft() {
	switch {
	case v.cursor.Char > 0:
		v.cursor.Char--
	case v.cursor.Line > 0:
		v.cursor.Line--
		v.cursor.Char = len(v.Line(v.cursor.Line))
	}
	v.wantCell = v.CursorCell()
	v.EnsureVisible()
}

func (v *View) MoveRight() {
	switch {
	case v.cursor.Char < len(v.Line(v.cursor.Line)):
		v.cursor.Char++
	case v.cursor.Line < len(v.lines)-1:
		v.cursor.Line++
		v.cursor.Char = 0
	}
	v.wantCell = v.CursorCell()
	v.EnsureVisible()
}

func (v *View) MoveUp() { v.moveVertical(-1) }

func (v *View) MoveDown() { v.moveVertical(1) }

func (v *View) PageUp() { v.moveVertical(-v.height) }

func (v *View) PageDown() { v.moveVertical(v.height) }

func (v *View) Home() {
	v.cursor.Char = 0
	v.wantCell = 0
	v.EnsureVisible()
}

func (v *View) End() {
	v.cursor.Char = len(v.Line(v.cursor.Line))
	v.wantCell = v.CursorCell()
	v.EnsureVisible()
}

// moveVertical moves by delta lines, landing on the rune that starts at or
// after the remembered display column.
func (v *View) moveVertical(delta int) {
	if len(v.lines) == 0 {
		return
	}
	next := min(max(v.cursor.Line+delta, 0), len(v.lines)-1)
	v.cursor.Line = next
	v.cursor.Char, _ = v.mapper.BufferOffset(v.lines[next], v.tabStride, v.wantCell, false)
	v.EnsureVisible()
}

// EnsureVisible scrolls the viewport so the cursor cell is inside it.
func (v *View) EnsureVisible() {
	if v.cursor.Line < v.top {
		v.top = v.cursor.Line
	} else if v.cursor.Line >= v.top+v.height {
		v.top = v.cursor.Line - v.height + 1
	}
	cell := v.CursorCell()
	if cell < v.left {
		v.left = cell
	} else if cell >= v.left+v.width {
		v.left = cell - v.width + 1
	}
}

// StartSelection anchors a selection at the cursor if none is active.
func (v *View) StartSelection() {
	if v.selecting {
		return
	}
	v.anchor = v.cursor
	v.selecting = true
}

func (v *View) ClearSelection() { v.selecting = false }

// Selection returns the ordered selection bounds.
func (v *View) Selection() (from, to Position, ok bool) {
	if !v.selecting || v.anchor == v.cursor {
		return Position{}, Position{}, false
	}
	from, to = v.anchor, v.cursor
	if to.Less(from) {
		from, to = to, from
	}
	return from, to, true
}

// SelectionSpan returns the selected display cells [start, end) on buffer
// line row. A selection continuing past the end of a line covers one extra
// cell for the line break.
func (v *View) SelectionSpan(row int) (start, end int, ok bool) {
	from, to, active := v.Selection()
	if !active || row < from.Line || row > to.Line {
		return 0, 0, false
	}
	line := v.Line(row)
	start = 0
	if row == from.Line {
		start = v.mapper.DisplayCell(line, v.tabStride, from.Char)
	}
	if row == to.Line {
		end = v.mapper.DisplayCell(line, v.tabStride, to.Char)
	} else {
		end = v.mapper.Width(line, v.tabStride) + 1
	}
	return start, end, end > start
}

// SelectedText returns the selected text joined with newlines.
func (v *View) SelectedText() string {
	from, to, ok := v.Selection()
	if !ok {
		return ""
	}
	var b strings.Builder
	for i := from.Line; i <= to.Line; i++ {
		line := v.Line(i)
		s, e := 0, len(line)
		if i == from.Line {
			s = min(from.Char, len(line))
		}
		if i == to.Line {
			e = min(to.Char, len(line))
		}
		if s < e {
			b.WriteString(string(line[s:e]))
		}
		if i != to.Line {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (v *View) clamp(p Position) Position {
	if len(v.lines) == 0 {
		return Position{}
	}
	p.Line = min(max(p.Line, 0), len(v.lines)-1)
	p.Char = min(max(p.Char, 0), len(v.lines[p.Line]))
	return p
}
