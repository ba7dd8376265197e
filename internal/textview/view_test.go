package textview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellmap/internal/textcell"
)

var wideW = textcell.WidthFunc(func(r rune) int {
	if r == 'W' {
		return 2
	}
	return 1
})

func TestScrollLine(t *testing.T) {
	m := textcell.NewMapper(wideW)
	r := textcell.NewRenderer(wideW)
	line := textcell.NewLine("a\tbWc")

	tests := []struct {
		scroll int
		want   string
	}{
		{scroll: 0, want: "a    b"},
		{scroll: 1, want: "    b "},
		// tab partly scrolled off shows as blanks
		{scroll: 3, want: "  bW c"},
		{scroll: 6, want: "W c"},
		// second cell of the wide rune
		{scroll: 7, want: " c"},
		{scroll: 8, want: "c"},
		{scroll: 9, want: ""},
		{scroll: 50, want: ""},
	}
	for _, tt := range tests {
		var out textcell.Cells
		require.NoError(t, ScrollLine(m, r, line, 4, tt.scroll, 6, &out))
		assert.Equal(t, tt.want, out.String(), "scroll %d", tt.scroll)
	}
}

func TestScrollLine_PlainTextStaysBorrowed(t *testing.T) {
	m := textcell.NewMapper(wideW)
	r := textcell.NewRenderer(wideW)
	line := textcell.NewLine("abcdef")
	var out textcell.Cells
	require.NoError(t, ScrollLine(m, r, line, 4, 2, 3, &out))
	assert.Equal(t, "cde", out.String())
	assert.Equal(t, textcell.Borrowed, out.Ownership())
	assert.Same(t, &line[2], &out.Runes()[0])
}

func TestLongestWidth(t *testing.T) {
	m := textcell.NewMapper(wideW)
	lines := []textcell.Line{
		textcell.NewLine("abc"),
		textcell.NewLine("\tW"),
		textcell.NewLine(""),
	}
	assert.Equal(t, 6, LongestWidth(m, lines, 4))
	assert.Equal(t, 3, LongestWidth(m, lines, 1))
	assert.Zero(t, LongestWidth(m, nil, 4))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n\n"))
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"x"}, SplitLines("x"))
}

func TestView_CursorFromViewport(t *testing.T) {
	v := New([]string{"a\tb", "xWy"}, wideW, 4)
	v.SetSize(20, 5)

	pos, in := v.CursorFromViewport(5, 0)
	assert.True(t, in)
	assert.Equal(t, Position{Line: 0, Char: 2}, pos)

	// a click inside the tab lands on the rune after it
	pos, _ = v.CursorFromViewport(2, 0)
	assert.Equal(t, Position{Line: 0, Char: 2}, pos)

	pos, _ = v.CursorFromViewport(1, 1)
	assert.Equal(t, Position{Line: 1, Char: 1}, pos)

	pos, in = v.CursorFromViewport(30, 4)
	assert.False(t, in)
	assert.Equal(t, Position{Line: 1, Char: 3}, pos)
}

func TestView_VerticalMoveKeepsDisplayColumn(t *testing.T) {
	v := New([]string{"abcdefgh", "\tx", "ab", "abcdefgh"}, wideW, 4)
	v.MoveTo(Position{Line: 0, Char: 6})
	require.Equal(t, 6, v.CursorCell())

	v.MoveDown()
	// the tab covers cells 0-3 and x is at 4, so cell 6 is past the end
	assert.Equal(t, Position{Line: 1, Char: 2}, v.Cursor())

	v.MoveDown()
	assert.Equal(t, Position{Line: 2, Char: 2}, v.Cursor())

	v.MoveDown()
	assert.Equal(t, Position{Line: 3, Char: 6}, v.Cursor())

	v.MoveDown()
	assert.Equal(t, Position{Line: 3, Char: 6}, v.Cursor())

	v.MoveTo(Position{Line: 0, Char: 2})
	v.MoveDown()
	// cell 2 is inside the tab; the cursor goes to the rune after it
	assert.Equal(t, Position{Line: 1, Char: 1}, v.Cursor())
}

func TestView_HorizontalMoves(t *testing.T) {
	v := New([]string{"ab", "cd"}, wideW, 4)
	v.MoveLeft()
	assert.Equal(t, Position{}, v.Cursor())

	v.End()
	v.MoveRight()
	assert.Equal(t, Position{Line: 1, Char: 0}, v.Cursor())
	v.MoveLeft()
	assert.Equal(t, Position{Line: 0, Char: 2}, v.Cursor())
	v.Home()
	assert.Equal(t, Position{Line: 0, Char: 0}, v.Cursor())
}

func TestView_EnsureVisibleScrolls(t *testing.T) {
	v := New([]string{"0123456789\tend", "1", "2", "3", "4"}, wideW, 4)
	v.SetSize(5, 2)
	v.End()
	left, top, _, _ := v.Viewport()
	assert.Equal(t, 13, left)
	assert.Zero(t, top)

	v.MoveTo(Position{Line: 4})
	left, top, _, _ = v.Viewport()
	assert.Zero(t, left)
	assert.Equal(t, 3, top)

	v.PageUp()
	assert.Equal(t, 2, v.Cursor().Line)
	v.PageUp()
	assert.Equal(t, 0, v.Cursor().Line)
}

func TestView_RenderRow(t *testing.T) {
	v := New([]string{"\tab", "Wc"}, wideW, 2)
	v.SetSize(3, 4)

	var out textcell.Cells
	require.NoError(t, v.RenderRow(0, &out))
	assert.Equal(t, "  a", out.String())
	require.NoError(t, v.RenderRow(1, &out))
	assert.Equal(t, "W c", out.String())
	require.NoError(t, v.RenderRow(3, &out))
	assert.Zero(t, out.Len())
}

func TestView_RenderRowBorrowsPlainLines(t *testing.T) {
	v := New([]string{"plain", "\tx"}, wideW, 2)
	v.SetSize(4, 2)

	var out textcell.Cells
	require.NoError(t, v.RenderRow(0, &out))
	assert.Equal(t, "plai", out.String())
	assert.Equal(t, textcell.Borrowed, out.Ownership())
	assert.True(t, out.Shares(v.Line(0)))

	var tab textcell.Cells
	require.NoError(t, v.RenderRow(1, &tab))
	assert.Equal(t, "  x", tab.String())
	assert.Equal(t, textcell.Owned, tab.Ownership())
}

func TestView_Selection(t *testing.T) {
	v := New([]string{"a\tb", "WxW", "end"}, wideW, 4)
	_, _, ok := v.SelectionSpan(0)
	assert.False(t, ok)

	v.MoveTo(Position{Line: 0, Char: 1})
	v.StartSelection()
	v.MoveTo(Position{Line: 1, Char: 2})

	start, end, ok := v.SelectionSpan(0)
	require.True(t, ok)
	assert.Equal(t, 1, start)
	assert.Equal(t, 7, end)

	start, end, ok = v.SelectionSpan(1)
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	_, _, ok = v.SelectionSpan(2)
	assert.False(t, ok)

	assert.Equal(t, "\tb\nWx", v.SelectedText())

	// selecting backwards orders the bounds
	v.ClearSelection()
	v.MoveTo(Position{Line: 1, Char: 3})
	v.StartSelection()
	v.MoveTo(Position{Line: 1, Char: 1})
	start, end, ok = v.SelectionSpan(1)
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)
	assert.Equal(t, "xW", v.SelectedText())
}

func TestView_SetTabStrideKeepsBufferPosition(t *testing.T) {
	v := New([]string{"\t\tx"}, wideW, 4)
	v.End()
	assert.Equal(t, 9, v.CursorCell())
	v.SetTabStride(2)
	assert.Equal(t, 3, v.Cursor().Char)
	assert.Equal(t, 5, v.CursorCell())
	v.SetTabStride(0)
	assert.Equal(t, 1, v.TabStride())
}

func TestView_SetLinesClampsCursor(t *testing.T) {
	v := New([]string{"long line", "second"}, wideW, 4)
	v.MoveTo(Position{Line: 1, Char: 5})
	v.SetLines([]string{"ab"})
	assert.Equal(t, Position{Line: 0, Char: 2}, v.Cursor())
	v.SetLines(nil)
	assert.Equal(t, Position{}, v.Cursor())
	assert.Zero(t, v.LineCount())
}
