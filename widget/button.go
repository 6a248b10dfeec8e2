package widget

import (
	"github.com/lixenwraith/loom/canvas"
	"github.com/lixenwraith/loom/text"
)

// Button is a one-row focusable leaf that fires a callback on Enter,
// Space, or left click. It exists to exercise focus and dispatch; a
// real application supplies its own widget catalog
type Button struct {
	Label      string
	Style      canvas.Style
	FocusStyle canvas.Style
	OnPress    func()
}

// NewButton returns a button with the given label and callback
func NewButton(label string, onPress func()) *Button {
	return &Button{
		Label:      label,
		FocusStyle: canvas.Style{Attr: canvas.AttrReverse},
		OnPress:    onPress,
	}
}

// Sizing reports flow-only support
func (b *Button) Sizing() Sizing {
	return SizeFlow
}

// Rows always returns one
func (b *Button) Rows(cols int, focus bool) int {
	return 1
}

// Render draws "< label >" clipped to the width. When focused the focus
// style applies and the cursor sits on the first label column
func (b *Button) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Flow {
		return canvas.Canvas{}, sizingError(b, size)
	}

	style := b.Style
	if focus.Focused() {
		style = b.FocusStyle
	}

	l := text.LayoutText("< "+b.Label+" >", size.Cols, text.AlignLeft, text.WrapClip)
	var segs []canvas.Segment
	if len(l.Lines) > 0 {
		ln := l.Lines[0]
		if ln.Width > 0 {
			segs = append(segs, canvas.Segment{Text: text.LineText("< "+b.Label+" >", ln), Style: style})
		}
		if ln.PadRight > 0 {
			segs = append(segs, padSegment(ln.PadRight, style))
		}
	}
	cv, err := canvas.FromRows(size.Cols, []canvas.Row{{Segments: segs}})
	if err != nil {
		return canvas.Canvas{}, err
	}
	if focus.Focused() && size.Cols > 2 {
		cv = cv.WithCursor(canvas.Position{X: 2, Y: 0})
	}
	return cv, nil
}

// HandleKey fires the callback on Enter or Space
func (b *Button) HandleKey(size Size, ev KeyEvent, focus Focus) bool {
	if !focus.Focused() {
		return false
	}
	if ev.Key == KeyEnter || (ev.Key == KeyRune && ev.Rune == ' ') {
		if b.OnPress != nil {
			b.OnPress()
		}
		return true
	}
	return false
}

// HandleMouse fires the callback on a left press anywhere on the button
func (b *Button) HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool) {
	if ev.Button != MouseBtnLeft || ev.Action != MouseActionPress {
		return nil, false
	}
	if b.OnPress != nil {
		b.OnPress()
	}
	return Path{}, true
}
