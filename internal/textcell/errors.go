package textcell

import "errors"

var (
	// ErrAllocation is returned when an output buffer cannot grow to the
	// number of cells a line needs. The affected line should not be drawn
	// this frame.
	ErrAllocation = errors.New("textcell: cell buffer cannot grow")
	// ErrTabStride is returned for a tab stride below one.
	ErrTabStride = errors.New("textcell: tab stride must be at least 1")
)
