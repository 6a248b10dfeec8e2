package widget

import (
	"fmt"

	"github.com/lixenwraith/loom/canvas"
)

// Pile stacks children vertically. In flow mode every child flows (or
// reserves its given rows) and the pile's height is the sum; in box mode
// given and packed children reserve rows first and weighted children
// share the remainder
type Pile struct {
	Items []Item
}

// NewPile returns a pile of the given items
func NewPile(items ...Item) *Pile {
	return &Pile{Items: items}
}

// Sizing reports flow and box support
func (p *Pile) Sizing() Sizing {
	return SizeFlow | SizeBox
}

// Rows sums the children's heights at the given width
func (p *Pile) Rows(cols int, focus bool) int {
	total := 0
	for _, it := range p.Items {
		if it.Kind == ItemGiven {
			total += it.Amount
			continue
		}
		total += rowsOf(it.W, cols, false)
	}
	return total
}

// layout derives each child's constraint for the pile's own constraint
func (p *Pile) layout(size Size) ([]Size, error) {
	sizes := make([]Size, len(p.Items))

	if size.Kind == Flow {
		for i, it := range p.Items {
			if it.Kind == ItemGiven {
				sizes[i] = BoxSize(size.Cols, it.Amount)
			} else {
				sizes[i] = FlowSize(size.Cols)
			}
		}
		return sizes, nil
	}
	if size.Kind != Box {
		return nil, sizingError(p, size)
	}

	// Box: reserve given/packed rows, spread the rest by weight
	reserved := 0
	weights := make([]int, 0, len(p.Items))
	for _, it := range p.Items {
		switch it.Kind {
		case ItemGiven:
			reserved += it.Amount
		case ItemPack:
			reserved += rowsOf(it.W, size.Cols, false)
		default:
			weights = append(weights, it.Amount)
		}
	}
	if reserved > size.Rows {
		return nil, fmt.Errorf("%w: pile needs %d rows, has %d", ErrInvariant, reserved, size.Rows)
	}

	shares := spread(size.Rows-reserved, weights)
	wi := 0
	for i, it := range p.Items {
		switch it.Kind {
		case ItemGiven:
			sizes[i] = BoxSize(size.Cols, it.Amount)
		case ItemPack:
			sizes[i] = FlowSize(size.Cols)
		default:
			sizes[i] = BoxSize(size.Cols, shares[wi])
			wi++
		}
	}
	return sizes, nil
}

// Render renders every child at its derived constraint and stacks the
// canvases. Only the focus-path child's cursor survives
func (p *Pile) Render(size Size, focus Focus) (canvas.Canvas, error) {
	sizes, err := p.layout(size)
	if err != nil {
		return canvas.Canvas{}, err
	}

	focusIdx := -1
	if sel, _, ok := focus.Next(); ok {
		focusIdx = sel
	}

	cvs := make([]canvas.Canvas, len(p.Items))
	for i, it := range p.Items {
		cv, err := it.W.Render(sizes[i], focus.Child(i))
		if err != nil {
			return canvas.Canvas{}, err
		}
		if err := CheckSize(cv, sizes[i]); err != nil {
			return canvas.Canvas{}, err
		}
		cvs[i] = cv
	}

	out, err := canvas.ConcatV(focusIdx, cvs...)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if size.Kind == Box && out.Height() != size.Rows {
		return canvas.Canvas{}, fmt.Errorf("%w: pile stacked to %d rows for %s",
			ErrInvariant, out.Height(), size)
	}
	return out, nil
}

// HandleKey forwards the event to the focus-path child
func (p *Pile) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	sel, next, ok := focus.Next()
	if !ok || sel < 0 || sel >= len(p.Items) {
		return false
	}
	sizes, err := p.layout(size)
	if err != nil {
		return false
	}
	h, ok := p.Items[sel].W.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(sizes[sel], ev, next)
}

// HandleMouse recomputes child geometry and forwards to the child under
// the pointer with translated coordinates
func (p *Pile) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	sizes, err := p.layout(size)
	if err != nil {
		return nil, false
	}
	y := 0
	for i, it := range p.Items {
		h := sizes[i].Rows
		if sizes[i].Kind == Flow {
			h = rowsOf(it.W, sizes[i].Cols, focus.Child(i).Focused())
		}
		if ev.Y < y+h {
			mh, ok := it.W.(MouseHandler)
			if !ok {
				return nil, false
			}
			child := ev
			child.Y -= y
			path, handled := mh.HandleMouse(sizes[i], child, focus.Child(i))
			if !handled {
				return nil, false
			}
			return append(Path{i}, path...), true
		}
		y += h
	}
	return nil, false
}
