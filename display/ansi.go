package display

import (
	"image/color"
	"io"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/loom/canvas"
)

// ANSIWriter applies frames to a raw stream with ANSI escape sequences,
// for outputs where a tcell screen is unavailable: pipes, recordings,
// remote sessions. Adjacent same-style cells collapse into one styled
// write
type ANSIWriter struct {
	out *termenv.Output
}

// NewANSIWriter returns a writer emitting true-color sequences to w
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{
		out: termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor)),
	}
}

// Apply writes one frame's updates to the stream
func (a *ANSIWriter) Apply(f Frame) {
	if f.Redraw {
		a.out.ClearScreen()
	}

	// Skip the cursor move when an update continues where the last ended
	row, col := -1, -1
	for _, u := range f.Updates {
		if u.Row != row || u.Col != col {
			a.out.MoveCursor(u.Row+1, u.Col+1)
			row, col = u.Row, u.Col
		}
		col += a.writeCells(u.Cells)
	}

	if f.CursorChanged {
		if f.Cursor.Visible {
			a.out.MoveCursor(f.Cursor.Pos.Y+1, f.Cursor.Pos.X+1)
			a.out.ShowCursor()
		} else {
			a.out.HideCursor()
		}
	}
}

// writeCells emits the cells as style-coalesced runs and returns the
// printable width written
func (a *ANSIWriter) writeCells(cells []canvas.Cell) int {
	width := 0
	runStart := 0
	var runText string

	flush := func(style canvas.Style) {
		if runText == "" {
			return
		}
		a.out.WriteString(a.styled(runText, style))
		width += ansi.PrintableRuneWidth(runText)
		runText = ""
	}

	for i, cell := range cells {
		if cell.IsContinuation() {
			continue
		}
		if runText != "" && cell.Style != cells[runStart].Style {
			flush(cells[runStart].Style)
			runStart = i
		}
		if runText == "" {
			runStart = i
		}
		runText += cell.Text
	}
	if runText != "" {
		flush(cells[runStart].Style)
	}
	return width
}

// styled wraps text in the escape sequences for the style
func (a *ANSIWriter) styled(text string, style canvas.Style) string {
	if style.IsZero() {
		return text
	}
	st := a.out.String(text)
	if style.Fg.Set {
		st = st.Foreground(a.out.Profile.FromColor(color.RGBA{R: style.Fg.R, G: style.Fg.G, B: style.Fg.B, A: 0xff}))
	}
	if style.Bg.Set {
		st = st.Background(a.out.Profile.FromColor(color.RGBA{R: style.Bg.R, G: style.Bg.G, B: style.Bg.B, A: 0xff}))
	}
	if style.Attr&canvas.AttrBold != 0 {
		st = st.Bold()
	}
	if style.Attr&canvas.AttrDim != 0 {
		st = st.Faint()
	}
	if style.Attr&canvas.AttrItalic != 0 {
		st = st.Italic()
	}
	if style.Attr&canvas.AttrUnderline != 0 {
		st = st.Underline()
	}
	if style.Attr&canvas.AttrBlink != 0 {
		st = st.Blink()
	}
	if style.Attr&canvas.AttrReverse != 0 {
		st = st.Reverse()
	}
	return st.String()
}
