package system

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Host describes what the attached terminal can draw.
type Host struct {
	// Terminal is true when stdout is a terminal.
	Terminal bool
	// Width is the terminal width in cells, or 0 when unknown.
	Width int
	// DoubleWide is false on consoles that cannot draw two-cell glyphs.
	DoubleWide bool
}

// Probe inspects stdout and the environment.
func Probe() Host {
	h := Host{DoubleWide: DoubleWideCapable()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		h.Terminal = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			h.Width = w
		}
	}
	return h
}

// DoubleWideCapable reports false for the Linux VT, dumb terminals and when
// CELLMAP_NARROW is set to a true value.
func DoubleWideCapable() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CELLMAP_NARROW"))) {
	case "1", "true", "yes", "on":
		return false
	}
	switch os.Getenv("TERM") {
	case "linux", "dumb":
		return false
	}
	return true
}
