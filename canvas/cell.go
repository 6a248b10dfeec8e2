package canvas

import (
	"github.com/mattn/go-runewidth"
)

// Cell is a single display column holding one styled grapheme cluster.
// Text == "" marks the continuation column of a double-width cluster;
// the continuation carries the same style as its owner
type Cell struct {
	Text  string
	Style Style
}

// Width returns the display columns the cell's cluster occupies.
// Continuation cells report 0
func (c Cell) Width() int {
	if c.Text == "" {
		return 0
	}
	return runewidth.StringWidth(c.Text)
}

// IsContinuation returns true for the trailing column of a wide cluster
func (c Cell) IsContinuation() bool {
	return c.Text == ""
}

// SpaceCell returns a single blank cell in the given style
func SpaceCell(style Style) Cell {
	return Cell{Text: " ", Style: style}
}
