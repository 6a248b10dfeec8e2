package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/loom/canvas"
)

// Solid is a box leaf filling its whole area with one cell
type Solid struct {
	Fill canvas.Cell
}

// NewSolid returns a solid fill of the given rune and style
func NewSolid(ch rune, style canvas.Style) *Solid {
	return &Solid{Fill: canvas.Cell{Text: string(ch), Style: style}}
}

// Sizing reports box-only support
func (s *Solid) Sizing() Sizing {
	return SizeBox
}

// Render fills the exact constraint area
func (s *Solid) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Box {
		return canvas.Canvas{}, sizingError(s, size)
	}
	return canvas.SolidFill(size.Cols, size.Rows, s.Fill), nil
}

// Divider is a one-row flow leaf drawing a horizontal rule
type Divider struct {
	Ch    rune
	Style canvas.Style
}

// NewDivider returns a divider drawn with the given rune
func NewDivider(ch rune) *Divider {
	return &Divider{Ch: ch}
}

// Sizing reports flow-only support
func (d *Divider) Sizing() Sizing {
	return SizeFlow
}

// Rows always returns one
func (d *Divider) Rows(cols int, focus bool) int {
	return 1
}

// Render draws one row of the divider rune
func (d *Divider) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Flow {
		return canvas.Canvas{}, sizingError(d, size)
	}
	ch := string(d.Ch)
	if runewidth.StringWidth(ch) != 1 {
		ch = " "
	}
	rows := []canvas.Row{{Segments: []canvas.Segment{{
		Text:  strings.Repeat(ch, size.Cols),
		Style: d.Style,
	}}}}
	if size.Cols == 0 {
		rows = []canvas.Row{{}}
	}
	return canvas.FromRows(size.Cols, rows)
}

// Static is a fixed leaf presenting a pre-built canvas at its intrinsic
// size, ignoring container hints
type Static struct {
	Canvas canvas.Canvas
}

// Sizing reports fixed-only support
func (s *Static) Sizing() Sizing {
	return SizeFixed
}

// Render returns the wrapped canvas unchanged
func (s *Static) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Fixed {
		return canvas.Canvas{}, sizingError(s, size)
	}
	return s.Canvas, nil
}
