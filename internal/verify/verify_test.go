package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellmap/internal/textcell"
)

func TestColumn(t *testing.T) {
	assert.Equal(t, 0, Column("", 10))
	assert.Equal(t, 5, Column("hello", 10))
}

func TestLines_AgreeOnPlainTextAndTabs(t *testing.T) {
	cls := textcell.NewClassifier(textcell.Capability{})
	r, m := textcell.NewRenderer(cls), textcell.NewMapper(cls)
	lines := []textcell.Line{
		textcell.NewLine("plain"),
		textcell.NewLine("a\tb\tc"),
		textcell.NewLine(""),
		textcell.NewLine("this line is longer than the budget"),
	}
	assert.Empty(t, Lines(r, m, lines, 4, 12))
}

func TestLines_ReportsDisagreement(t *testing.T) {
	// a classifier that claims 'x' is wide while the terminal draws it narrow
	wrong := textcell.WidthFunc(func(r rune) int {
		if r == 'x' {
			return 2
		}
		return 1
	})
	r, m := textcell.NewRenderer(wrong), textcell.NewMapper(wrong)
	got := Lines(r, m, []textcell.Line{textcell.NewLine("ok"), textcell.NewLine("axb")}, 4, 20)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 4, got[0].Expected)
	assert.Equal(t, 4, got[0].Rendered)
	assert.Equal(t, 3, got[0].Actual)
	assert.Contains(t, got[0].String(), "line 2")
}

func TestLines_ReportsRenderErrors(t *testing.T) {
	cls := textcell.NewClassifier(textcell.Capability{})
	got := Lines(textcell.NewRenderer(cls), textcell.NewMapper(cls), []textcell.Line{textcell.NewLine("a")}, 0, 10)
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0].Err, textcell.ErrTabStride)
}
