package widget

import (
	"github.com/lixenwraith/loom/canvas"
)

// Frame surrounds a box body with optional flow header and footer rows.
// When the header and footer together exceed the frame's height the
// footer shrinks first, then the header. Focus child 0 is the header,
// 1 the body, 2 the footer
type Frame struct {
	Header Widget
	Body   Widget
	Footer Widget
}

// NewFrame returns a frame around the given body
func NewFrame(body Widget) *Frame {
	return &Frame{Body: body}
}

// Sizing reports box-only support
func (f *Frame) Sizing() Sizing {
	return SizeBox
}

// split derives the header, body, and footer heights
func (f *Frame) split(size Size) (hRows, bRows, fRows int) {
	if f.Header != nil {
		hRows = rowsOf(f.Header, size.Cols, false)
	}
	if f.Footer != nil {
		fRows = rowsOf(f.Footer, size.Cols, false)
	}
	if hRows+fRows > size.Rows {
		fRows = size.Rows - hRows
		if fRows < 0 {
			fRows = 0
			hRows = size.Rows
		}
	}
	bRows = size.Rows - hRows - fRows
	return hRows, bRows, fRows
}

// renderBar renders a flow bar and trims it to its allotted rows
func (f *Frame) renderBar(w Widget, cols, rows int, focus Focus) (canvas.Canvas, error) {
	barSize := FlowSize(cols)
	cv, err := w.Render(barSize, focus)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(cv, barSize); err != nil {
		return canvas.Canvas{}, err
	}
	if cv.Height() != rows {
		return canvas.Trim(cv, 0, 0, cols, min(rows, cv.Height()))
	}
	return cv, nil
}

// Render stacks header, body, and footer. Only the focus-path child's
// cursor survives
func (f *Frame) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Box {
		return canvas.Canvas{}, sizingError(f, size)
	}
	hRows, bRows, fRows := f.split(size)

	focusSel := 1
	if sel, _, ok := focus.Next(); ok {
		focusSel = sel
	}

	var cvs []canvas.Canvas
	focusPos := -1
	if f.Header != nil && hRows > 0 {
		cv, err := f.renderBar(f.Header, size.Cols, hRows, focus.Child(0))
		if err != nil {
			return canvas.Canvas{}, err
		}
		if cv.Height() < hRows {
			cv = canvas.Pad(cv, 0, 0, 0, hRows-cv.Height(), blankCell)
		}
		if focusSel == 0 {
			focusPos = len(cvs)
		}
		cvs = append(cvs, cv)
	}

	body, err := f.Body.Render(BoxSize(size.Cols, bRows), focus.Child(1))
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(body, BoxSize(size.Cols, bRows)); err != nil {
		return canvas.Canvas{}, err
	}
	if focusSel == 1 {
		focusPos = len(cvs)
	}
	cvs = append(cvs, body)

	if f.Footer != nil && fRows > 0 {
		cv, err := f.renderBar(f.Footer, size.Cols, fRows, focus.Child(2))
		if err != nil {
			return canvas.Canvas{}, err
		}
		if cv.Height() < fRows {
			cv = canvas.Pad(cv, 0, 0, 0, fRows-cv.Height(), blankCell)
		}
		if focusSel == 2 {
			focusPos = len(cvs)
		}
		cvs = append(cvs, cv)
	}

	return canvas.ConcatV(focusPos, cvs...)
}

// HandleKey forwards the event to the focus-path child
func (f *Frame) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	sel, next, ok := focus.Next()
	if !ok {
		sel, next = 1, focus.Child(1)
	}
	_, bRows, _ := f.split(size)

	var w Widget
	var childSize Size
	switch sel {
	case 0:
		w, childSize = f.Header, FlowSize(size.Cols)
	case 1:
		w, childSize = f.Body, BoxSize(size.Cols, bRows)
	case 2:
		w, childSize = f.Footer, FlowSize(size.Cols)
	default:
		return false
	}
	if w == nil {
		return false
	}
	h, ok := w.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(childSize, ev, next)
}

// HandleMouse forwards to the band under the pointer
func (f *Frame) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	hRows, bRows, fRows := f.split(size)

	forward := func(idx int, w Widget, childSize Size, yOff int) (Path, bool) {
		mh, ok := w.(MouseHandler)
		if !ok {
			return nil, false
		}
		child := ev
		child.Y -= yOff
		path, handled := mh.HandleMouse(childSize, child, focus.Child(idx))
		if !handled {
			return nil, false
		}
		return append(Path{idx}, path...), true
	}

	switch {
	case ev.Y < hRows:
		if f.Header == nil {
			return nil, false
		}
		return forward(0, f.Header, FlowSize(size.Cols), 0)
	case ev.Y < hRows+bRows:
		return forward(1, f.Body, BoxSize(size.Cols, bRows), hRows)
	case ev.Y < hRows+bRows+fRows:
		if f.Footer == nil {
			return nil, false
		}
		return forward(2, f.Footer, FlowSize(size.Cols), hRows+bRows)
	}
	return nil, false
}
