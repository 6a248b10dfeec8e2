package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/loom/canvas"
	"github.com/lixenwraith/loom/widget"
)

// ScreenApplier writes differ frames to a tcell screen
type ScreenApplier struct {
	screen tcell.Screen
}

// NewScreenApplier returns an applier over the given screen
func NewScreenApplier(s tcell.Screen) *ScreenApplier {
	return &ScreenApplier{screen: s}
}

// Apply writes one frame's updates and presents the screen
func (a *ScreenApplier) Apply(f Frame) {
	for _, u := range f.Updates {
		x := u.Col
		for _, cell := range u.Cells {
			if cell.IsContinuation() {
				x++
				continue
			}
			runes := []rune(cell.Text)
			mainc := ' '
			var combc []rune
			if len(runes) > 0 {
				mainc = runes[0]
				combc = runes[1:]
			}
			a.screen.SetContent(x, u.Row, mainc, combc, toTcellStyle(cell.Style))
			x++
		}
	}
	if f.CursorChanged {
		if f.Cursor.Visible {
			a.screen.ShowCursor(f.Cursor.Pos.X, f.Cursor.Pos.Y)
		} else {
			a.screen.HideCursor()
		}
	}
	if f.Redraw {
		a.screen.Sync()
	} else {
		a.screen.Show()
	}
}

// toTcellStyle converts a canvas style to tcell's representation
func toTcellStyle(s canvas.Style) tcell.Style {
	st := tcell.StyleDefault
	if s.Fg.Set {
		st = st.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if s.Bg.Set {
		st = st.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}
	if s.Attr&canvas.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attr&canvas.AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attr&canvas.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attr&canvas.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attr&canvas.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attr&canvas.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// TranslateKey converts a tcell key event to the widget representation.
// Unknown keys report false
func TranslateKey(ev *tcell.EventKey) (widget.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return widget.KeyEvent{Key: widget.KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyEscape:
		return widget.KeyEvent{Key: widget.KeyEscape}, true
	case tcell.KeyEnter:
		return widget.KeyEvent{Key: widget.KeyEnter}, true
	case tcell.KeyTab:
		return widget.KeyEvent{Key: widget.KeyTab}, true
	case tcell.KeyBacktab:
		return widget.KeyEvent{Key: widget.KeyBacktab}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return widget.KeyEvent{Key: widget.KeyBackspace}, true
	case tcell.KeyDelete:
		return widget.KeyEvent{Key: widget.KeyDelete}, true
	case tcell.KeyUp:
		return widget.KeyEvent{Key: widget.KeyUp}, true
	case tcell.KeyDown:
		return widget.KeyEvent{Key: widget.KeyDown}, true
	case tcell.KeyLeft:
		return widget.KeyEvent{Key: widget.KeyLeft}, true
	case tcell.KeyRight:
		return widget.KeyEvent{Key: widget.KeyRight}, true
	case tcell.KeyHome:
		return widget.KeyEvent{Key: widget.KeyHome}, true
	case tcell.KeyEnd:
		return widget.KeyEvent{Key: widget.KeyEnd}, true
	case tcell.KeyPgUp:
		return widget.KeyEvent{Key: widget.KeyPageUp}, true
	case tcell.KeyPgDn:
		return widget.KeyEvent{Key: widget.KeyPageDown}, true
	}
	return widget.KeyEvent{}, false
}

// MouseTranslator converts tcell mouse events to the widget
// representation, tracking the held button mask to classify each event
// as press, release, or move
type MouseTranslator struct {
	held tcell.ButtonMask
}

// Translate converts one mouse event. Events carrying no state change
// and no held button report false
func (t *MouseTranslator) Translate(ev *tcell.EventMouse) (widget.MouseEvent, bool) {
	x, y := ev.Position()
	btns := ev.Buttons()

	out := widget.MouseEvent{X: x, Y: y}
	switch {
	case btns&tcell.WheelUp != 0:
		out.Button = widget.MouseBtnWheelUp
		out.Action = widget.MouseActionPress
		return out, true
	case btns&tcell.WheelDown != 0:
		out.Button = widget.MouseBtnWheelDown
		out.Action = widget.MouseActionPress
		return out, true
	}

	held := btns & (tcell.ButtonPrimary | tcell.ButtonMiddle | tcell.ButtonSecondary)
	pressed := held &^ t.held
	released := t.held &^ held
	t.held = held

	switch {
	case pressed != 0:
		out.Button = translateButton(pressed)
		out.Action = widget.MouseActionPress
	case released != 0:
		out.Button = translateButton(released)
		out.Action = widget.MouseActionRelease
	case held != 0:
		out.Button = translateButton(held)
		out.Action = widget.MouseActionMove
	default:
		out.Action = widget.MouseActionMove
	}
	return out, true
}

// translateButton picks the lowest-numbered button in the mask
func translateButton(m tcell.ButtonMask) widget.MouseButton {
	switch {
	case m&tcell.ButtonPrimary != 0:
		return widget.MouseBtnLeft
	case m&tcell.ButtonMiddle != 0:
		return widget.MouseBtnMiddle
	case m&tcell.ButtonSecondary != 0:
		return widget.MouseBtnRight
	}
	return widget.MouseBtnNone
}
