package widget

import (
	"github.com/lixenwraith/loom/canvas"
)

// Filler turns a flow child into a box widget by padding it vertically.
// A child taller than the box is trimmed on the side opposite its
// alignment. Filler is transparent to focus: it consumes no focus path
// component
type Filler struct {
	Child  Widget
	VAlign VAlign
}

// NewFiller returns a middle-aligned filler around a flow child
func NewFiller(child Widget) *Filler {
	return &Filler{Child: child}
}

// Sizing reports box-only support
func (f *Filler) Sizing() Sizing {
	return SizeBox
}

// inset returns the child's height and top offset inside the box.
// A negative offset means the child is trimmed by that many rows
func (f *Filler) inset(size Size, focus bool) (h, top int) {
	h = rowsOf(f.Child, size.Cols, focus)
	switch f.VAlign {
	case VTop:
		top = 0
	case VBottom:
		top = size.Rows - h
	default:
		top = (size.Rows - h) / 2
	}
	return h, top
}

// Render renders the flow child and pads or trims it to the box height
func (f *Filler) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Box {
		return canvas.Canvas{}, sizingError(f, size)
	}

	childSize := FlowSize(size.Cols)
	cv, err := f.Child.Render(childSize, focus)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(cv, childSize); err != nil {
		return canvas.Canvas{}, err
	}

	_, top := f.inset(size, focus.Focused())
	if cv.Height() > size.Rows {
		start := -top
		if start < 0 {
			start = 0
		}
		if start > cv.Height()-size.Rows {
			start = cv.Height() - size.Rows
		}
		return canvas.Trim(cv, 0, start, size.Cols, size.Rows)
	}
	return canvas.Pad(cv, 0, top, 0, size.Rows-top-cv.Height(), blankCell), nil
}

// HandleKey forwards the event to the child at its flow constraint
func (f *Filler) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	h, ok := f.Child.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(FlowSize(size.Cols), ev, focus)
}

// HandleMouse forwards to the child when the pointer is inside it
func (f *Filler) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	h, top := f.inset(size, focus.Focused())
	if ev.Y < top || ev.Y >= top+h {
		return nil, false
	}
	mh, ok := f.Child.(MouseHandler)
	if !ok {
		return nil, false
	}
	child := ev
	child.Y -= top
	return mh.HandleMouse(FlowSize(size.Cols), child, focus)
}

// Padding narrows its child to Cols columns (zero means full width) and
// pads the remainder per the alignment. Sizing and focus pass through
type Padding struct {
	Child  Widget
	HAlign HAlign
	Cols   int
}

// NewPadding returns centered padding narrowing the child to cols
func NewPadding(child Widget, cols int) *Padding {
	return &Padding{Child: child, Cols: cols}
}

// Sizing reports the child's box and flow support
func (p *Padding) Sizing() Sizing {
	return p.Child.Sizing() & (SizeBox | SizeFlow)
}

// inner returns the child width and left offset for the outer width
func (p *Padding) inner(cols int) (w, left int) {
	w = p.Cols
	if w <= 0 || w > cols {
		w = cols
	}
	switch p.HAlign {
	case HLeft:
		left = 0
	case HRight:
		left = cols - w
	default:
		left = (cols - w) / 2
	}
	return w, left
}

// Rows returns the child's height at the narrowed width
func (p *Padding) Rows(cols int, focus bool) int {
	w, _ := p.inner(cols)
	return rowsOf(p.Child, w, focus)
}

// childSize derives the child's constraint for the outer constraint
func (p *Padding) childSize(size Size) (Size, error) {
	w, _ := p.inner(size.Cols)
	switch size.Kind {
	case Box:
		return BoxSize(w, size.Rows), nil
	case Flow:
		return FlowSize(w), nil
	}
	return Size{}, sizingError(p, size)
}

// Render renders the narrowed child and pads the sides
func (p *Padding) Render(size Size, focus Focus) (canvas.Canvas, error) {
	childSize, err := p.childSize(size)
	if err != nil {
		return canvas.Canvas{}, err
	}
	cv, err := p.Child.Render(childSize, focus)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(cv, childSize); err != nil {
		return canvas.Canvas{}, err
	}
	_, left := p.inner(size.Cols)
	return canvas.Pad(cv, left, 0, size.Cols-left-cv.Width(), 0, blankCell), nil
}

// HandleKey forwards the event to the child at its narrowed constraint
func (p *Padding) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	childSize, err := p.childSize(size)
	if err != nil {
		return false
	}
	h, ok := p.Child.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(childSize, ev, focus)
}

// HandleMouse forwards to the child when the pointer is inside it
func (p *Padding) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	w, left := p.inner(size.Cols)
	if ev.X < left || ev.X >= left+w {
		return nil, false
	}
	childSize, err := p.childSize(size)
	if err != nil {
		return nil, false
	}
	mh, ok := p.Child.(MouseHandler)
	if !ok {
		return nil, false
	}
	child := ev
	child.X -= left
	return mh.HandleMouse(childSize, child, focus)
}
