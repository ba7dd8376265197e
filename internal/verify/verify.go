// Package verify cross-checks rendered rows against a terminal emulator.
// Each row is written to a fresh emulator and the cursor column it ends on
// is compared with the width the mapper predicts.
package verify

import (
	"fmt"

	"github.com/charmbracelet/x/vt"

	"cellmap/internal/textcell"
)

// Mismatch is a row whose emulated width differs from the prediction.
type Mismatch struct {
	// Line is zero based.
	Line int
	// Expected is min(Mapper.Width, budget).
	Expected int
	// Rendered is the number of cells the renderer produced.
	Rendered int
	// Actual is the emulator cursor column after writing the row.
	Actual int
	Err    error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("line %d: %v", m.Line+1, m.Err)
	}
	return fmt.Sprintf("line %d: expected %d cells, rendered %d, terminal advanced %d",
		m.Line+1, m.Expected, m.Rendered, m.Actual)
}

// Lines renders every line within maxCells and reports those that disagree.
func Lines(r *textcell.Renderer, m *textcell.Mapper, lines []textcell.Line, tabStride, maxCells int) []Mismatch {
	var (
		out textcell.Cells
		bad []Mismatch
	)
	for i, line := range lines {
		if err := r.Render(line, 0, tabStride, maxCells, &out); err != nil {
			bad = append(bad, Mismatch{Line: i, Err: err})
			continue
		}
		expected := min(m.Width(line, tabStride), maxCells)
		actual := Column(r.Terminal(&out), maxCells+1)
		if expected != out.Len() || expected != actual {
			bad = append(bad, Mismatch{Line: i, Expected: expected, Rendered: out.Len(), Actual: actual})
		}
	}
	return bad
}

// Column writes s to an emulator cols wide and returns the cursor column.
func Column(s string, cols int) int {
	emu := vt.NewEmulator(max(cols, 1), 1)
	_, _ = emu.Write([]byte(s))
	return emu.CursorPosition().X
}
