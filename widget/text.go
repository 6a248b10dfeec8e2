package widget

import (
	"github.com/lixenwraith/loom/canvas"
	"github.com/lixenwraith/loom/text"
)

// Text is a flow leaf rendering a styled, wrapped block of text
type Text struct {
	Content string
	Style   canvas.Style
	Align   text.Align
	Wrap    text.Wrap
	Cache   *text.Cache // optional; nil computes every layout
}

// NewText returns a left-aligned, space-wrapped text widget
func NewText(content string) *Text {
	return &Text{Content: content, Wrap: text.WrapSpace}
}

// Sizing reports flow-only support
func (t *Text) Sizing() Sizing {
	return SizeFlow
}

// Rows returns the display line count at the given width
func (t *Text) Rows(cols int, focus bool) int {
	return len(t.layout(cols).Lines)
}

// Render lays the text out at the constraint width, one canvas row per
// display line, with alignment padding in the widget's style
func (t *Text) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Flow {
		return canvas.Canvas{}, sizingError(t, size)
	}

	l := t.layout(size.Cols)
	rows := make([]canvas.Row, len(l.Lines))
	for i, ln := range l.Lines {
		var segs []canvas.Segment
		if ln.PadLeft > 0 {
			segs = append(segs, padSegment(ln.PadLeft, t.Style))
		}
		if ln.Width > 0 {
			segs = append(segs, canvas.Segment{
				Text:  text.LineText(t.Content, ln),
				Style: t.Style,
			})
		}
		if ln.PadRight > 0 {
			segs = append(segs, padSegment(ln.PadRight, t.Style))
		}
		rows[i] = canvas.Row{Segments: segs, Wrapped: ln.Wrapped}
	}
	return canvas.FromRows(size.Cols, rows)
}

func (t *Text) layout(cols int) text.Layout {
	return t.Cache.Layout(t.Content, cols, t.Align, t.Wrap)
}

// padSegment returns a run of styled spaces for alignment padding
func padSegment(width int, style canvas.Style) canvas.Segment {
	b := make([]byte, width)
	for i := range b {
		b[i] = ' '
	}
	return canvas.Segment{Text: string(b), Style: style}
}
