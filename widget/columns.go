package widget

import (
	"fmt"

	"github.com/lixenwraith/loom/canvas"
)

// Columns arranges children side by side. Given items reserve exact
// widths and weighted items share the remainder; Gap blank columns
// separate adjacent children. In flow mode the columns' height is the
// tallest child and shorter children are padded at the bottom
type Columns struct {
	Items []Item
	Gap   int
}

// NewColumns returns columns over the given items
func NewColumns(items ...Item) *Columns {
	return &Columns{Items: items}
}

// Sizing reports flow and box support
func (c *Columns) Sizing() Sizing {
	return SizeFlow | SizeBox
}

// widths derives each child's column count for the total width
func (c *Columns) widths(cols int) []int {
	gap := c.Gap
	if gap < 0 {
		gap = 0
	}
	avail := cols - gap*(len(c.Items)-1)
	if avail < 0 {
		avail = 0
	}

	reserved := 0
	weights := make([]int, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Kind == ItemGiven {
			reserved += it.Amount
		} else {
			w := it.Amount
			if w < 1 {
				w = 1
			}
			weights = append(weights, w)
		}
	}
	shares := spread(avail-reserved, weights)

	out := make([]int, len(c.Items))
	wi := 0
	for i, it := range c.Items {
		if it.Kind == ItemGiven {
			out[i] = it.Amount
		} else {
			out[i] = shares[wi]
			wi++
		}
	}
	return out
}

// childSize picks a child's constraint: flow-only children flow at
// their width even inside box columns and are padded to the height
func (c *Columns) childSize(kind Kind, width, height int, w Widget) Size {
	if kind == Box && w.Sizing().Supports(Box) {
		return BoxSize(width, height)
	}
	return FlowSize(width)
}

// Rows returns the tallest child's height at its derived width
func (c *Columns) Rows(cols int, focus bool) int {
	max := 0
	for i, w := range c.widths(cols) {
		if r := rowsOf(c.Items[i].W, w, false); r > max {
			max = r
		}
	}
	return max
}

// Render renders children at their derived widths and joins the
// canvases with gap fills. Only the focus-path child's cursor survives
func (c *Columns) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Box && size.Kind != Flow {
		return canvas.Canvas{}, sizingError(c, size)
	}
	widths := c.widths(size.Cols)

	height := size.Rows
	if size.Kind == Flow {
		height = c.Rows(size.Cols, focus.Focused())
	}

	focusSel := -1
	if sel, _, ok := focus.Next(); ok {
		focusSel = sel
	}

	// Children interleaved with gap fills; track the focused position
	var cvs []canvas.Canvas
	focusPos := -1
	for i, it := range c.Items {
		childSize := c.childSize(size.Kind, widths[i], height, it.W)
		cv, err := it.W.Render(childSize, focus.Child(i))
		if err != nil {
			return canvas.Canvas{}, err
		}
		if err := CheckSize(cv, childSize); err != nil {
			return canvas.Canvas{}, err
		}
		if cv.Height() > height {
			return canvas.Canvas{}, fmt.Errorf("%w: column %d is %d rows, max %d",
				ErrInvariant, i, cv.Height(), height)
		}
		if cv.Height() < height {
			cv = canvas.Pad(cv, 0, 0, 0, height-cv.Height(), blankCell)
		}

		if i > 0 && c.Gap > 0 {
			cvs = append(cvs, canvas.SolidFill(c.Gap, height, blankCell))
		}
		if i == focusSel {
			focusPos = len(cvs)
		}
		cvs = append(cvs, cv)
	}
	if len(cvs) == 0 {
		return canvas.SolidFill(size.Cols, height, blankCell), nil
	}

	out, err := canvas.ConcatH(focusPos, cvs...)
	if err != nil {
		return canvas.Canvas{}, err
	}
	// The joined width must equal the constraint exactly
	if out.Width() != size.Cols {
		return canvas.Canvas{}, fmt.Errorf("%w: columns joined to %d columns for %s",
			ErrInvariant, out.Width(), size)
	}
	return out, nil
}

// HandleKey forwards the event to the focus-path child
func (c *Columns) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	sel, next, ok := focus.Next()
	if !ok || sel < 0 || sel >= len(c.Items) {
		return false
	}
	widths := c.widths(size.Cols)
	childSize := c.childSize(size.Kind, widths[sel], size.Rows, c.Items[sel].W)
	h, ok := c.Items[sel].W.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(childSize, ev, next)
}

// HandleMouse forwards to the child under the pointer
func (c *Columns) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	widths := c.widths(size.Cols)
	gap := c.Gap
	if gap < 0 {
		gap = 0
	}
	x := 0
	for i, it := range c.Items {
		if i > 0 {
			x += gap
		}
		if ev.X >= x && ev.X < x+widths[i] {
			childSize := c.childSize(size.Kind, widths[i], size.Rows, it.W)
			mh, ok := it.W.(MouseHandler)
			if !ok {
				return nil, false
			}
			child := ev
			child.X -= x
			path, handled := mh.HandleMouse(childSize, child, focus.Child(i))
			if !handled {
				return nil, false
			}
			return append(Path{i}, path...), true
		}
		x += widths[i]
	}
	return nil, false
}
