package canvas

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// GradientDirection selects the axis a gradient runs along
type GradientDirection uint8

const (
	GradientHorizontal GradientDirection = iota
	GradientVertical
)

// GradientFill returns a canvas filled with the given rune whose
// background blends from one color to the other along the direction.
// Blending happens in Luv space for perceptually even steps
func GradientFill(width, height int, ch rune, from, to Color, dir GradientDirection) Canvas {
	if width <= 0 || height <= 0 {
		return SolidFill(width, height, Cell{Text: " "})
	}

	fc := toColorful(from)
	tc := toColorful(to)

	steps := width
	if dir == GradientVertical {
		steps = height
	}

	colors := make([]Color, steps)
	for i := range colors {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		colors[i] = fromColorful(fc.BlendLuv(tc, t))
	}

	text := string(ch)
	if runewidth.StringWidth(text) != 1 {
		text = " "
	}
	rows := make([]Row, height)
	for y := 0; y < height; y++ {
		if dir == GradientVertical {
			rows[y] = solidRow(width, Cell{Text: text, Style: Style{Bg: colors[y]}})
			continue
		}
		segs := make([]Segment, width)
		for x := 0; x < width; x++ {
			segs[x] = Segment{Text: text, Style: Style{Bg: colors[x]}}
		}
		rows[y] = Row{Segments: segs}
	}
	return Canvas{width: width, height: height, rows: rows}
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	cl := c.Clamped()
	return RGB(uint8(cl.R*255.0+0.5), uint8(cl.G*255.0+0.5), uint8(cl.B*255.0+0.5))
}
