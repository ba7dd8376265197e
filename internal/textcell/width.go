package textcell

import (
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/width"
)

// Table selects the lookup used to decide which runes are double width.
type Table string

const (
	// TableRuneWidth uses go-runewidth with ambiguous runes treated as narrow.
	TableRuneWidth Table = "runewidth"
	// TableEastAsian uses the East Asian Width property from x/text/width.
	TableEastAsian Table = "eastasian"
)

// Capability describes what the host console can draw. It is resolved once
// (see system.Probe and config.Settings) and handed to NewClassifier.
type Capability struct {
	// DoubleWide reports whether the host draws wide runes across two cells.
	DoubleWide bool
	// SubstituteNUL makes an embedded NUL render as a single space, for hosts
	// that cannot draw it.
	SubstituteNUL bool
	// Table picks the width lookup when DoubleWide is set.
	Table Table
}

// Classifier maps a single rune to the number of cells it occupies.
// Tabs are never passed to Width; they advance by the caller's tab stride.
type Classifier interface {
	// Width returns 1 or 2.
	Width(r rune) int
	// Substitutes reports whether r is drawn as one space instead of itself.
	Substitutes(r rune) bool
}

// NewClassifier returns the classifier for the given host capability.
func NewClassifier(c Capability) Classifier {
	if !c.DoubleWide {
		return narrow{nul: c.SubstituteNUL}
	}
	if c.Table == TableEastAsian {
		return eastAsian{nul: c.SubstituteNUL}
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return runeWidth{cond: cond, nul: c.SubstituteNUL}
}

// WidthFunc adapts a plain function to Classifier. Results other than 2 are
// reported as 1 and no rune is substituted.
type WidthFunc func(r rune) int

func (f WidthFunc) Width(r rune) int {
	if f(r) == 2 {
		return 2
	}
	return 1
}

func (f WidthFunc) Substitutes(rune) bool { return false }

type narrow struct{ nul bool }

func (narrow) Width(rune) int { return 1 }

func (n narrow) Substitutes(r rune) bool { return n.nul && r == 0 }

type runeWidth struct {
	cond *runewidth.Condition
	nul  bool
}

func (w runeWidth) Width(r rune) int {
	if w.cond.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

func (w runeWidth) Substitutes(r rune) bool { return w.nul && r == 0 }

type eastAsian struct{ nul bool }

func (eastAsian) Width(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func (e eastAsian) Substitutes(r rune) bool { return e.nul && r == 0 }
