package canvas

import (
	"fmt"
)

// Trim returns the width×height sub-canvas at (left, top).
// The requested rectangle must be fully contained in the source.
// A full-size trim shares all row data with the source.
// The cursor survives only if it falls inside the trimmed region
func Trim(c Canvas, left, top, width, height int) (Canvas, error) {
	if left < 0 || top < 0 || width < 0 || height < 0 ||
		left+width > c.width || top+height > c.height {
		return Canvas{}, fmt.Errorf("%w: trim %dx%d at (%d,%d) from %dx%d",
			ErrOutOfBounds, width, height, left, top, c.width, c.height)
	}

	var rows []Row
	if left == 0 && width == c.width {
		rows = c.rows[top : top+height]
	} else {
		rows = make([]Row, height)
		for y := 0; y < height; y++ {
			cells := expandRow(c.rows[top+y], c.width)
			sub := make([]Cell, width)
			copy(sub, cells[left:left+width])
			repairCells(sub)
			rows[y] = rebuildRow(sub, c.rows[top+y].Wrapped)
		}
	}

	out := Canvas{width: width, height: height, rows: rows}
	if c.hasCursor &&
		c.cursor.X >= left && c.cursor.X < left+width &&
		c.cursor.Y >= top && c.cursor.Y < top+height {
		out.cursor = Position{X: c.cursor.X - left, Y: c.cursor.Y - top}
		out.hasCursor = true
	}
	return out, nil
}

// Pad widens the canvas by inserting fill columns and rows on the given
// sides. Negative amounts are treated as zero; Pad never shrinks.
// The cursor translates with the content
func Pad(c Canvas, left, top, right, bottom int, fill Cell) Canvas {
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right < 0 {
		right = 0
	}
	if bottom < 0 {
		bottom = 0
	}
	if left == 0 && top == 0 && right == 0 && bottom == 0 {
		return c
	}

	width := c.width + left + right
	rows := make([]Row, 0, c.height+top+bottom)
	for i := 0; i < top; i++ {
		rows = append(rows, solidRow(width, fill))
	}
	for _, r := range c.rows {
		if left == 0 && right == 0 {
			rows = append(rows, r)
			continue
		}
		segs := make([]Segment, 0, len(r.Segments)+2)
		if left > 0 {
			segs = append(segs, solidRow(left, fill).Segments...)
		}
		segs = append(segs, r.Segments...)
		if right > 0 {
			segs = append(segs, solidRow(right, fill).Segments...)
		}
		rows = append(rows, Row{Segments: segs, Wrapped: r.Wrapped})
	}
	for i := 0; i < bottom; i++ {
		rows = append(rows, solidRow(width, fill))
	}

	out := Canvas{width: width, height: c.height + top + bottom, rows: rows}
	if c.hasCursor {
		out.cursor = Position{X: c.cursor.X + left, Y: c.cursor.Y + top}
		out.hasCursor = true
	}
	return out
}

// Overlay composites top onto base at the given position. Cells of top
// matching the transparent predicate (nil means fully opaque) let the
// base cell show through. The top canvas must fit within base after
// translation. The top's cursor wins over the base's
func Overlay(base, top Canvas, at Position, transparent func(Cell) bool) (Canvas, error) {
	if at.X < 0 || at.Y < 0 ||
		at.X+top.width > base.width || at.Y+top.height > base.height {
		return Canvas{}, fmt.Errorf("%w: overlay %dx%d at (%d,%d) onto %dx%d",
			ErrOutOfBounds, top.width, top.height, at.X, at.Y, base.width, base.height)
	}

	rows := make([]Row, base.height)
	copy(rows, base.rows)
	for y := 0; y < top.height; y++ {
		bc := expandRow(base.rows[at.Y+y], base.width)
		tc := expandRow(top.rows[y], top.width)
		for x := 0; x < top.width; x++ {
			c := tc[x]
			if c.IsContinuation() {
				continue // handled with its owner
			}
			if transparent != nil && transparent(c) {
				continue
			}
			w := c.Width()
			if w == 2 && x+1 >= top.width {
				// Wide cluster split by the top edge
				c = SpaceCell(c.Style)
				w = 1
			}
			bc[at.X+x] = c
			if w == 2 {
				bc[at.X+x+1] = Cell{Style: c.Style}
				x++
			}
		}
		repairCells(bc)
		// Rows the top covers carry its line-continues flag, so trimming
		// the composed region back out returns the top canvas exactly
		rows[at.Y+y] = rebuildRow(bc, top.rows[y].Wrapped)
	}

	out := Canvas{width: base.width, height: base.height, rows: rows}
	if top.hasCursor {
		out.cursor = Position{X: top.cursor.X + at.X, Y: top.cursor.Y + at.Y}
		out.hasCursor = true
	} else if base.hasCursor {
		out.cursor = base.cursor
		out.hasCursor = true
	}
	return out, nil
}

// ConcatH joins canvases left to right. All inputs must share the same
// height. The cursor of the canvas at index focus survives, translated;
// pass a negative focus to drop all cursors
func ConcatH(focus int, cs ...Canvas) (Canvas, error) {
	if len(cs) == 0 {
		return Canvas{}, nil
	}
	height := cs[0].height
	width := 0
	for i, c := range cs {
		if c.height != height {
			return Canvas{}, fmt.Errorf("%w: canvas %d is %d rows, want %d",
				ErrHeightMismatch, i, c.height, height)
		}
		width += c.width
	}

	rows := make([]Row, height)
	for y := 0; y < height; y++ {
		var segs []Segment
		wrapped := false
		for _, c := range cs {
			segs = append(segs, c.rows[y].Segments...)
			wrapped = wrapped || c.rows[y].Wrapped
		}
		rows[y] = Row{Segments: segs, Wrapped: wrapped}
	}

	out := Canvas{width: width, height: height, rows: rows}
	if focus >= 0 && focus < len(cs) && cs[focus].hasCursor {
		offset := 0
		for _, c := range cs[:focus] {
			offset += c.width
		}
		out.cursor = Position{X: cs[focus].cursor.X + offset, Y: cs[focus].cursor.Y}
		out.hasCursor = true
	}
	return out, nil
}

// ConcatV stacks canvases top to bottom. All inputs must share the same
// width. The cursor of the canvas at index focus survives, translated;
// pass a negative focus to drop all cursors
func ConcatV(focus int, cs ...Canvas) (Canvas, error) {
	if len(cs) == 0 {
		return Canvas{}, nil
	}
	width := cs[0].width
	height := 0
	for i, c := range cs {
		if c.width != width {
			return Canvas{}, fmt.Errorf("%w: canvas %d is %d columns, want %d",
				ErrWidthMismatch, i, c.width, width)
		}
		height += c.height
	}

	rows := make([]Row, 0, height)
	for _, c := range cs {
		rows = append(rows, c.rows...)
	}

	out := Canvas{width: width, height: height, rows: rows}
	if focus >= 0 && focus < len(cs) && cs[focus].hasCursor {
		offset := 0
		for _, c := range cs[:focus] {
			offset += c.height
		}
		out.cursor = Position{X: cs[focus].cursor.X, Y: cs[focus].cursor.Y + offset}
		out.hasCursor = true
	}
	return out, nil
}
