package textcell

import "unsafe"

// DefaultCellLimit bounds how far an owned Cells buffer may grow.
const DefaultCellLimit = 1 << 20

// Line is a single row of text measured in runes. Callers must not modify a
// Line while a call that references it is outstanding.
type Line []rune

// NewLine converts s into a Line.
func NewLine(s string) Line { return Line([]rune(s)) }

func (l Line) String() string { return string(l) }

// Ownership tells whether a Cells aliases a Line or owns its buffer.
type Ownership int

const (
	// Released means the Cells holds no storage.
	Released Ownership = iota
	// Borrowed means the cells share the backing array of the rendered Line.
	Borrowed
	// Owned means the cells live in a buffer belonging to the Cells.
	Owned
)

func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return "released"
	}
}

// Cells is a run of single-cell runes produced by Renderer.Render.
//
// The zero value is released and lets Render take the zero-copy path. A
// Cells from NewCells owns a buffer that Render reuses and grows. Borrowed
// cells are read-only: they share storage with the source Line, which stays
// alive for as long as either of them references it.
type Cells struct {
	buf   []rune
	src   Line
	owner Ownership
	limit int
}

// NewCells returns an owned, empty Cells with room for capacity cells.
func NewCells(capacity int) *Cells {
	if capacity < 0 {
		capacity = 0
	}
	return &Cells{buf: make([]rune, 0, capacity), owner: Owned}
}

// Len returns the number of cells.
func (c *Cells) Len() int { return len(c.buf) }

// Cap returns the owned capacity, or zero when the cells are not owned.
func (c *Cells) Cap() int {
	if c.owner != Owned {
		return 0
	}
	return cap(c.buf)
}

// Ownership reports how the cells are stored.
func (c *Cells) Ownership() Ownership { return c.owner }

// Runes returns the cells. The slice must be treated as read-only; for
// borrowed cells it is the caller's Line.
func (c *Cells) Runes() []rune { return c.buf }

func (c *Cells) String() string { return string(c.buf) }

// Shares reports whether the cells alias the storage of line.
func (c *Cells) Shares(line Line) bool {
	if c.owner != Borrowed {
		return false
	}
	return unsafe.SliceData(c.src) == unsafe.SliceData(line)
}

// SetLimit caps the capacity an owned buffer may grow to. Values below one
// restore DefaultCellLimit.
func (c *Cells) SetLimit(n int) {
	if n < 1 {
		n = 0
	}
	c.limit = n
}

// Release drops the cells. Borrowed cells only let go of their reference to
// the Line; an owned buffer is handed back to the garbage collector.
func (c *Cells) Release() {
	c.buf = nil
	c.src = nil
	c.owner = Released
}

func (c *Cells) maxCap() int {
	if c.limit > 0 {
		return c.limit
	}
	return DefaultCellLimit
}

func (c *Cells) borrow(line Line, n int) {
	c.buf = line[:n:n]
	c.src = line
	c.owner = Borrowed
}

// reserve makes sure an owned buffer can hold n cells. Existing contents are
// discarded. It fails when n is beyond the limit.
func (c *Cells) reserve(n int) bool {
	if n > c.maxCap() {
		c.Release()
		return false
	}
	if c.owner == Owned && cap(c.buf) >= n {
		c.buf = c.buf[:0]
		return true
	}
	c.buf = make([]rune, 0, n)
	c.src = nil
	c.owner = Owned
	return true
}
