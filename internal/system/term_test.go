package system

import (
	"testing"

	tu "cellmap/internal/testutil"
)

func TestDoubleWideCapable(t *testing.T) {
	cases := []struct {
		term, narrow string
		want         bool
	}{
		{term: "xterm-256color", want: true},
		{term: "linux", want: false},
		{term: "dumb", want: false},
		{term: "xterm-256color", narrow: "1", want: false},
		{term: "xterm-256color", narrow: "TRUE", want: false},
		{term: "xterm-256color", narrow: "0", want: true},
	}
	for _, c := range cases {
		restoreTerm := tu.WithEnv(t, "TERM", c.term)
		restoreNarrow := tu.WithEnv(t, "CELLMAP_NARROW", c.narrow)
		if got := DoubleWideCapable(); got != c.want {
			t.Fatalf("TERM=%q CELLMAP_NARROW=%q: got %v, want %v", c.term, c.narrow, got, c.want)
		}
		restoreNarrow()
		restoreTerm()
	}
}

func TestProbe_NotATerminalUnderTest(t *testing.T) {
	defer tu.WithEnv(t, "TERM", "linux")()
	h := Probe()
	if h.DoubleWide {
		t.Fatalf("expected narrow host for TERM=linux")
	}
	if !h.Terminal && h.Width != 0 {
		t.Fatalf("width %d reported without a terminal", h.Width)
	}
}
