package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is a run of text rendered in one style
type Segment struct {
	Text  string
	Style Style
}

// Width returns the display columns of the segment text
func (s Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Row is one canvas line: an ordered sequence of styled segments.
// Wrapped marks lines whose content continues on the following row
type Row struct {
	Segments []Segment
	Wrapped  bool
}

// Width returns the total display columns of the row
func (r Row) Width() int {
	w := 0
	for _, seg := range r.Segments {
		w += seg.Width()
	}
	return w
}

// solidRow returns a row of width columns filled with the given cell.
// Fill cells wider than one column degrade to a styled space
func solidRow(width int, fill Cell) Row {
	if width <= 0 {
		return Row{}
	}
	text := fill.Text
	if fill.Width() != 1 {
		text = " "
	}
	return Row{Segments: []Segment{{
		Text:  strings.Repeat(text, width),
		Style: fill.Style,
	}}}
}

// expandRow flattens a row into exactly width cells, one per column.
// Wide clusters occupy their column plus a continuation column.
// Zero-width clusters attach to the preceding cell
func expandRow(r Row, width int) []Cell {
	cells := make([]Cell, 0, width)
	for _, seg := range r.Segments {
		g := uniseg.NewGraphemes(seg.Text)
		for g.Next() {
			cluster := g.Str()
			w := runewidth.StringWidth(cluster)
			if w <= 0 {
				if n := len(cells); n > 0 && !cells[n-1].IsContinuation() {
					cells[n-1].Text += cluster
				}
				continue
			}
			cells = append(cells, Cell{Text: cluster, Style: seg.Style})
			for i := 1; i < w; i++ {
				cells = append(cells, Cell{Style: seg.Style})
			}
		}
	}
	for len(cells) < width {
		cells = append(cells, Cell{Text: " "})
	}
	return cells[:width]
}

// repairCells replaces the halves of wide clusters split by a splice
// boundary with styled spaces so every column renders exactly once
func repairCells(cells []Cell) {
	for i := 0; i < len(cells); i++ {
		c := cells[i]
		if c.IsContinuation() {
			// Orphaned continuation: owner was overwritten
			if i == 0 || cells[i-1].Width() != 2 {
				cells[i] = SpaceCell(c.Style)
			}
			continue
		}
		if c.Width() == 2 {
			// Wide cluster must own the next column
			if i+1 >= len(cells) || !cells[i+1].IsContinuation() {
				cells[i] = SpaceCell(c.Style)
			} else {
				i++ // skip owned continuation
			}
		}
	}
}

// rebuildRow packs cells back into merged segments
func rebuildRow(cells []Cell, wrapped bool) Row {
	var segs []Segment
	for i := 0; i < len(cells); i++ {
		c := cells[i]
		text := c.Text
		if c.IsContinuation() {
			// repairCells leaves continuations only behind owners
			text = " "
			if i > 0 && cells[i-1].Width() == 2 {
				continue
			}
		}
		if n := len(segs); n > 0 && segs[n-1].Style == c.Style {
			segs[n-1].Text += text
		} else {
			segs = append(segs, Segment{Text: text, Style: c.Style})
		}
	}
	return Row{Segments: segs, Wrapped: wrapped}
}
