// Package display turns rendered canvases into terminal updates.
//
// A Differ compares each frame's canvas against the previous one and
// emits the minimal set of row-run updates; appliers translate those
// updates to a concrete output, either a tcell screen or a raw ANSI
// stream
package display

import (
	"github.com/lixenwraith/loom/canvas"
)

// RegionUpdate is one dirty run of cells on a single row
type RegionUpdate struct {
	Row   int
	Col   int
	Cells []canvas.Cell
}

// CursorUpdate is the cursor state to apply after the cell updates
type CursorUpdate struct {
	Pos     canvas.Position
	Visible bool
}

// Frame is the full set of updates for one rendered canvas
type Frame struct {
	Updates       []RegionUpdate
	Cursor        CursorUpdate
	CursorChanged bool
	Redraw        bool
}

// Options tunes the differ
type Options struct {
	// CoalesceGap merges dirty runs on a row separated by at most this
	// many unchanged cells, trading a few rewritten cells for fewer
	// cursor moves
	CoalesceGap int
}

// DefaultOptions returns the differ defaults
func DefaultOptions() Options {
	return Options{CoalesceGap: 4}
}

// Differ computes frame-to-frame updates. It keeps the previously
// presented canvas; the first frame and any dimension change produce a
// full redraw
type Differ struct {
	opts    Options
	prev    canvas.Canvas
	hasPrev bool
}

// NewDiffer returns a differ with the given options
func NewDiffer(opts Options) *Differ {
	if opts.CoalesceGap < 0 {
		opts.CoalesceGap = 0
	}
	return &Differ{opts: opts}
}

// Reset forgets the presented state, forcing a full redraw on the next
// frame. Call after anything else may have written to the terminal
func (d *Differ) Reset() {
	d.prev = canvas.Canvas{}
	d.hasPrev = false
}

// Frame diffs next against the previously presented canvas and records
// next as presented
func (d *Differ) Frame(next canvas.Canvas) Frame {
	full := !d.hasPrev ||
		d.prev.Width() != next.Width() ||
		d.prev.Height() != next.Height()

	var f Frame
	if full {
		f.Redraw = true
		for y := 0; y < next.Height(); y++ {
			cells := next.Cells(y)
			if len(cells) == 0 {
				continue
			}
			f.Updates = append(f.Updates, RegionUpdate{Row: y, Cells: cells})
		}
	} else {
		for y := 0; y < next.Height(); y++ {
			prevCells := d.prev.Cells(y)
			nextCells := next.Cells(y)
			for _, span := range diffRow(prevCells, nextCells, d.opts.CoalesceGap) {
				f.Updates = append(f.Updates, RegionUpdate{
					Row:   y,
					Col:   span[0],
					Cells: nextCells[span[0]:span[1]],
				})
			}
		}
	}

	pos, visible := next.Cursor()
	f.Cursor = CursorUpdate{Pos: pos, Visible: visible}
	if full {
		f.CursorChanged = true
	} else {
		prevPos, prevVisible := d.prev.Cursor()
		f.CursorChanged = visible != prevVisible || (visible && pos != prevPos)
	}

	d.prev = next
	d.hasPrev = true
	return f
}

// diffRow returns the dirty [start, end) spans of one row, coalescing
// runs separated by at most gap unchanged cells and widening each span
// so wide clusters are never split
func diffRow(prev, next []canvas.Cell, gap int) [][2]int {
	var spans [][2]int
	start, last := -1, -1
	for x := range next {
		if prev[x] == next[x] {
			continue
		}
		if start < 0 {
			start, last = x, x
			continue
		}
		if x-last-1 <= gap {
			last = x
			continue
		}
		spans = append(spans, widenSpan(prev, next, start, last+1))
		start, last = x, x
	}
	if start >= 0 {
		spans = append(spans, widenSpan(prev, next, start, last+1))
	}
	return spans
}

// widenSpan grows [start, end) to whole wide clusters in both the old
// and new row, so an update never paints half a cluster
func widenSpan(prev, next []canvas.Cell, start, end int) [2]int {
	for start > 0 && (next[start].IsContinuation() || prev[start].IsContinuation()) {
		start--
	}
	for end < len(next) && (next[end].IsContinuation() || prev[end].IsContinuation()) {
		end++
	}
	return [2]int{start, end}
}
