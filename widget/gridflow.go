package widget

import (
	"github.com/lixenwraith/loom/canvas"
)

// GridFlow lays equal-width cells left to right, wrapping to new rows
// when the width runs out. HSep and VSep insert blank separator columns
// and rows; Align positions each row's block inside the full width
type GridFlow struct {
	Items     []Widget
	CellWidth int
	HSep      int
	VSep      int
	Align     HAlign
}

// NewGridFlow returns a left-aligned grid of the given cell width
func NewGridFlow(cellWidth int, items ...Widget) *GridFlow {
	return &GridFlow{Items: items, CellWidth: cellWidth, Align: HLeft}
}

// Sizing reports flow-only support
func (g *GridFlow) Sizing() Sizing {
	return SizeFlow
}

// geometry returns the effective cell width and cells per row.
// At least one cell fits per row regardless of width
func (g *GridFlow) geometry(cols int) (cw, perRow int) {
	cw = g.CellWidth
	if cw < 1 {
		cw = 1
	}
	if cw > cols {
		cw = cols
	}
	hsep := g.HSep
	if hsep < 0 {
		hsep = 0
	}
	perRow = 1
	if cols > cw {
		perRow = 1 + (cols-cw)/(cw+hsep)
	}
	return cw, perRow
}

// Rows sums the grid's row heights and separators at the given width
func (g *GridFlow) Rows(cols int, focus bool) int {
	if len(g.Items) == 0 || cols == 0 {
		return 0
	}
	cw, perRow := g.geometry(cols)
	vsep := g.VSep
	if vsep < 0 {
		vsep = 0
	}

	total := 0
	for start := 0; start < len(g.Items); start += perRow {
		if start > 0 {
			total += vsep
		}
		end := min(start+perRow, len(g.Items))
		rowH := 0
		for _, w := range g.Items[start:end] {
			if h := rowsOf(w, cw, false); h > rowH {
				rowH = h
			}
		}
		total += rowH
	}
	return total
}

// Render lays the cells out row by row. Only the focus-path cell's
// cursor survives
func (g *GridFlow) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Flow {
		return canvas.Canvas{}, sizingError(g, size)
	}
	if len(g.Items) == 0 || size.Cols == 0 {
		return canvas.SolidFill(size.Cols, 0, blankCell), nil
	}
	cw, perRow := g.geometry(size.Cols)
	hsep := g.HSep
	if hsep < 0 {
		hsep = 0
	}
	vsep := g.VSep
	if vsep < 0 {
		vsep = 0
	}

	focusSel := -1
	if sel, _, ok := focus.Next(); ok {
		focusSel = sel
	}

	var rowCvs []canvas.Canvas
	focusRowPos := -1
	for start := 0; start < len(g.Items); start += perRow {
		end := min(start+perRow, len(g.Items))

		cells := make([]canvas.Canvas, 0, end-start)
		rowH := 0
		for i := start; i < end; i++ {
			cellSize := FlowSize(cw)
			cv, err := g.Items[i].Render(cellSize, focus.Child(i))
			if err != nil {
				return canvas.Canvas{}, err
			}
			if err := CheckSize(cv, cellSize); err != nil {
				return canvas.Canvas{}, err
			}
			cells = append(cells, cv)
			if cv.Height() > rowH {
				rowH = cv.Height()
			}
		}

		var joined []canvas.Canvas
		focusCellPos := -1
		for i, cv := range cells {
			if cv.Height() < rowH {
				cv = canvas.Pad(cv, 0, 0, 0, rowH-cv.Height(), blankCell)
			}
			if i > 0 && hsep > 0 {
				joined = append(joined, canvas.SolidFill(hsep, rowH, blankCell))
			}
			if start+i == focusSel {
				focusCellPos = len(joined)
			}
			joined = append(joined, cv)
		}
		rowCv, err := canvas.ConcatH(focusCellPos, joined...)
		if err != nil {
			return canvas.Canvas{}, err
		}

		// Align the row block inside the full width
		pad := size.Cols - rowCv.Width()
		var left int
		switch g.Align {
		case HRight:
			left = pad
		case HCenter:
			left = pad / 2
		}
		rowCv = canvas.Pad(rowCv, left, 0, pad-left, 0, blankCell)

		if len(rowCvs) > 0 && vsep > 0 {
			rowCvs = append(rowCvs, canvas.SolidFill(size.Cols, vsep, blankCell))
		}
		if focusCellPos >= 0 {
			focusRowPos = len(rowCvs)
		}
		rowCvs = append(rowCvs, rowCv)
	}

	return canvas.ConcatV(focusRowPos, rowCvs...)
}

// HandleKey forwards the event to the focus-path cell
func (g *GridFlow) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	sel, next, ok := focus.Next()
	if !ok || sel < 0 || sel >= len(g.Items) {
		return false
	}
	cw, _ := g.geometry(size.Cols)
	h, ok := g.Items[sel].(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(FlowSize(cw), ev, next)
}

// HandleMouse recomputes the grid geometry and forwards to the cell
// under the pointer
func (g *GridFlow) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	if len(g.Items) == 0 || size.Cols == 0 {
		return nil, false
	}
	cw, perRow := g.geometry(size.Cols)
	hsep := g.HSep
	if hsep < 0 {
		hsep = 0
	}
	vsep := g.VSep
	if vsep < 0 {
		vsep = 0
	}

	y := 0
	for start := 0; start < len(g.Items); start += perRow {
		if start > 0 {
			y += vsep
		}
		end := min(start+perRow, len(g.Items))
		rowH := 0
		for _, w := range g.Items[start:end] {
			if h := rowsOf(w, cw, false); h > rowH {
				rowH = h
			}
		}
		if ev.Y < y+rowH {
			if ev.Y < y {
				return nil, false
			}
			n := end - start
			rowW := n*cw + (n-1)*hsep
			pad := size.Cols - rowW
			var left int
			switch g.Align {
			case HRight:
				left = pad
			case HCenter:
				left = pad / 2
			}
			x := left
			for i := start; i < end; i++ {
				if ev.X >= x && ev.X < x+cw {
					mh, ok := g.Items[i].(MouseHandler)
					if !ok {
						return nil, false
					}
					child := ev
					child.X -= x
					child.Y -= y
					path, handled := mh.HandleMouse(FlowSize(cw), child, focus.Child(i))
					if !handled {
						return nil, false
					}
					return append(Path{i}, path...), true
				}
				x += cw + hsep
			}
			return nil, false
		}
		y += rowH
	}
	return nil, false
}
