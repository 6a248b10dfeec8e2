package widget

import (
	"github.com/lixenwraith/loom/canvas"
)

// HAlign positions an overlay horizontally inside its area
type HAlign uint8

const (
	HCenter HAlign = iota
	HLeft
	HRight
)

// VAlign positions an overlay vertically inside its area
type VAlign uint8

const (
	VMiddle VAlign = iota
	VTop
	VBottom
)

// Overlay draws Top over Bottom. The top widget occupies Cols by Rows
// cells aligned inside the bottom canvas; zero Cols fills the width and
// zero Rows asks a flow top for its natural height. A positive Rows is
// exact for a box-capable top and caps a flow top's height. Cells for
// which Transparent returns true let the bottom canvas show through.
// Focus child 0 is the bottom, child 1 the top
type Overlay struct {
	Bottom Widget
	Top    Widget

	HAlign HAlign
	Cols   int
	VAlign VAlign
	Rows   int

	Transparent func(canvas.Cell) bool
}

// NewOverlay returns a centered overlay of top over bottom
func NewOverlay(bottom, top Widget, cols, rows int) *Overlay {
	return &Overlay{Bottom: bottom, Top: top, Cols: cols, Rows: rows}
}

// Sizing reports box-only support
func (o *Overlay) Sizing() Sizing {
	return SizeBox
}

// topGeometry derives the top canvas placement for the overlay's area
func (o *Overlay) topGeometry(size Size, focus Focus) (Size, error) {
	cols := o.Cols
	if cols <= 0 || cols > size.Cols {
		cols = size.Cols
	}

	switch {
	case o.Rows > 0 && o.Top.Sizing().Supports(Box):
		rows := o.Rows
		if rows > size.Rows {
			rows = size.Rows
		}
		return BoxSize(cols, rows), nil
	case o.Top.Sizing().Supports(Flow):
		return FlowSize(cols), nil
	case o.Top.Sizing().Supports(Box):
		return BoxSize(cols, size.Rows), nil
	case o.Top.Sizing().Supports(Fixed):
		return FixedSize(), nil
	}
	return Size{}, sizingError(o.Top, size)
}

// place returns the top-left corner for a top canvas of the given extent
func (o *Overlay) place(size Size, w, h int) canvas.Position {
	var x, y int
	switch o.HAlign {
	case HLeft:
		x = 0
	case HRight:
		x = size.Cols - w
	default:
		x = (size.Cols - w) / 2
	}
	switch o.VAlign {
	case VTop:
		y = 0
	case VBottom:
		y = size.Rows - h
	default:
		y = (size.Rows - h) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return canvas.Position{X: x, Y: y}
}

// Render composites the top canvas over the bottom one. Only the
// focus-path child's cursor survives
func (o *Overlay) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Box {
		return canvas.Canvas{}, sizingError(o, size)
	}

	focusSel := -1
	if sel, _, ok := focus.Next(); ok {
		focusSel = sel
	}

	bottom, err := o.Bottom.Render(BoxSize(size.Cols, size.Rows), focus.Child(0))
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(bottom, size); err != nil {
		return canvas.Canvas{}, err
	}
	if focusSel != 0 {
		bottom = bottom.WithoutCursor()
	}

	topSize, err := o.topGeometry(size, focus.Child(1))
	if err != nil {
		return canvas.Canvas{}, err
	}
	top, err := o.Top.Render(topSize, focus.Child(1))
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(top, topSize); err != nil {
		return canvas.Canvas{}, err
	}
	maxRows := size.Rows
	if o.Rows > 0 && o.Rows < maxRows {
		maxRows = o.Rows
	}
	if top.Width() > size.Cols || top.Height() > maxRows {
		top, err = canvas.Trim(top, 0, 0, min(top.Width(), size.Cols), min(top.Height(), maxRows))
		if err != nil {
			return canvas.Canvas{}, err
		}
	}
	if focusSel != 1 {
		top = top.WithoutCursor()
	}

	at := o.place(size, top.Width(), top.Height())
	return canvas.Overlay(bottom, top, at, o.Transparent)
}

// HandleKey forwards the event to the focus-path child
func (o *Overlay) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	sel, next, ok := focus.Next()
	if !ok {
		return false
	}
	var w Widget
	var childSize Size
	var err error
	switch sel {
	case 0:
		w, childSize = o.Bottom, BoxSize(size.Cols, size.Rows)
	case 1:
		w = o.Top
		childSize, err = o.topGeometry(size, next)
		if err != nil {
			return false
		}
	default:
		return false
	}
	h, ok := w.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(childSize, ev, next)
}

// HandleMouse forwards to the top child when the pointer is inside its
// area, else to the bottom child
func (o *Overlay) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	topSize, err := o.topGeometry(size, focus.Child(1))
	if err == nil {
		w, h := o.topExtent(size, topSize, focus.Child(1))
		at := o.place(size, w, h)
		if ev.X >= at.X && ev.X < at.X+w && ev.Y >= at.Y && ev.Y < at.Y+h {
			mh, ok := o.Top.(MouseHandler)
			if !ok {
				return nil, false
			}
			child := ev
			child.X -= at.X
			child.Y -= at.Y
			path, handled := mh.HandleMouse(topSize, child, focus.Child(1))
			if !handled {
				return nil, false
			}
			return append(Path{1}, path...), true
		}
	}
	mh, ok := o.Bottom.(MouseHandler)
	if !ok {
		return nil, false
	}
	path, handled := mh.HandleMouse(BoxSize(size.Cols, size.Rows), ev, focus.Child(0))
	if !handled {
		return nil, false
	}
	return append(Path{0}, path...), true
}

// topExtent resolves the top widget's rendered extent for hit testing
func (o *Overlay) topExtent(size, topSize Size, focus Focus) (int, int) {
	switch topSize.Kind {
	case Box:
		return topSize.Cols, topSize.Rows
	case Flow:
		h := rowsOf(o.Top, topSize.Cols, focus.Focused())
		if o.Rows > 0 && h > o.Rows {
			h = o.Rows
		}
		if h > size.Rows {
			h = size.Rows
		}
		return topSize.Cols, h
	default:
		cv, err := o.Top.Render(topSize, focus)
		if err != nil {
			return 0, 0
		}
		return cv.Width(), cv.Height()
	}
}
