// Package textcell maps between positions in a line of text and the screen
// cells that line occupies on a character-cell display, and turns a line into
// a bounded run of cells ready to draw.
//
// A Line is measured in runes. Most runes take one cell; a tab advances by a
// fixed stride from the current column (it does not snap to a multiple of the
// stride) and a rune the Classifier reports as wide takes two. Mapper converts
// in both directions and Renderer produces the cells, aliasing the caller's
// line when nothing needs transforming.
package textcell
