package canvas

// Attr is a bitmask of text attributes
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Color is an RGB color. The zero value selects the terminal default
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns an explicit color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Style bundles foreground, background, and attributes for a run of cells
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// IsZero returns true if the style carries no colors or attributes
func (s Style) IsZero() bool {
	return s == Style{}
}
