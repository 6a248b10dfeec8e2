// Package canvas provides the immutable rectangular grid of styled
// character cells that widgets render into and the renderer diffs.
//
// A Canvas is never mutated after creation: every derivation (Trim, Pad,
// Overlay, ConcatH, ConcatV) returns a new canvas, sharing unmodified row
// data with its sources by reference
package canvas

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds    = errors.New("canvas: out of bounds")
	ErrWidthMismatch  = errors.New("canvas: width mismatch")
	ErrHeightMismatch = errors.New("canvas: height mismatch")
)

// Position is a (column, row) coordinate
type Position struct {
	X, Y int
}

// Canvas is a width×height grid of styled segments with an optional cursor
type Canvas struct {
	width, height int
	rows          []Row
	cursor        Position
	hasCursor     bool
}

// SolidFill returns a canvas filled with the given cell.
// Zero or negative dimensions produce a valid empty canvas
func SolidFill(width, height int, fill Cell) Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([]Row, height)
	for y := range rows {
		rows[y] = solidRow(width, fill)
	}
	return Canvas{width: width, height: height, rows: rows}
}

// FromRows builds a canvas from prepared rows, validating that every row
// renders to exactly width columns
func FromRows(width int, rows []Row) (Canvas, error) {
	if width < 0 {
		return Canvas{}, fmt.Errorf("%w: negative width %d", ErrOutOfBounds, width)
	}
	for y, r := range rows {
		if w := r.Width(); w != width {
			return Canvas{}, fmt.Errorf("%w: row %d is %d columns, want %d", ErrWidthMismatch, y, w, width)
		}
	}
	return Canvas{width: width, height: len(rows), rows: rows}, nil
}

// Width returns the canvas width in columns
func (c Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows
func (c Canvas) Height() int {
	return c.height
}

// Row returns row y. The returned value shares segment data with the
// canvas and must not be modified
func (c Canvas) Row(y int) Row {
	return c.rows[y]
}

// Cells returns row y expanded to one cell per column.
// The slice is freshly allocated and safe to modify
func (c Canvas) Cells(y int) []Cell {
	return expandRow(c.rows[y], c.width)
}

// Cursor returns the cursor position and whether one is set
func (c Canvas) Cursor() (Position, bool) {
	return c.cursor, c.hasCursor
}

// WithCursor returns a copy of the canvas with the cursor at p.
// Out-of-bounds positions leave the canvas cursorless
func (c Canvas) WithCursor(p Position) Canvas {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		c.hasCursor = false
		return c
	}
	c.cursor = p
	c.hasCursor = true
	return c
}

// WithoutCursor returns a copy of the canvas with no cursor
func (c Canvas) WithoutCursor() Canvas {
	c.hasCursor = false
	return c
}

// Equal reports whether two canvases render identically: same dimensions,
// same cell content and styles, same cursor state
func Equal(a, b Canvas) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	if a.hasCursor != b.hasCursor || (a.hasCursor && a.cursor != b.cursor) {
		return false
	}
	for y := 0; y < a.height; y++ {
		ac := expandRow(a.rows[y], a.width)
		bc := expandRow(b.rows[y], b.width)
		for x := range ac {
			if ac[x] != bc[x] {
				return false
			}
		}
		if a.rows[y].Wrapped != b.rows[y].Wrapped {
			return false
		}
	}
	return true
}

// String renders cell content as text for debugging, one line per row
func (c Canvas) String() string {
	out := make([]byte, 0, (c.width+1)*c.height)
	for y := 0; y < c.height; y++ {
		for _, cell := range c.Cells(y) {
			out = append(out, cell.Text...)
		}
		if y < c.height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
