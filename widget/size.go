package widget

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/loom/canvas"
)

// ErrInvariant marks a widget protocol violation: a render that does not
// match its negotiated constraint, or a constraint the widget does not
// support. These are programming errors and propagate to the render root
var ErrInvariant = errors.New("widget: size constraint violated")

// Kind is a size constraint variant
type Kind uint8

const (
	// Box gives the widget an exact columns×rows area
	Box Kind = iota
	// Flow fixes the width; the widget determines its own row count
	Flow
	// Fixed lets the widget pick its intrinsic size
	Fixed
)

// String returns the constraint variant name
func (k Kind) String() string {
	switch k {
	case Box:
		return "box"
	case Flow:
		return "flow"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Sizing is the bitmask of constraint variants a widget accepts
type Sizing uint8

const (
	SizeBox Sizing = 1 << iota
	SizeFlow
	SizeFixed
)

// Supports returns true if the capability set includes the variant
func (s Sizing) Supports(k Kind) bool {
	switch k {
	case Box:
		return s&SizeBox != 0
	case Flow:
		return s&SizeFlow != 0
	case Fixed:
		return s&SizeFixed != 0
	}
	return false
}

// Size is a tagged size constraint passed to Render
type Size struct {
	Kind Kind
	Cols int // valid for Box and Flow
	Rows int // valid for Box
}

// BoxSize returns an exact-area constraint
func BoxSize(cols, rows int) Size {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return Size{Kind: Box, Cols: cols, Rows: rows}
}

// FlowSize returns a fixed-width constraint
func FlowSize(cols int) Size {
	if cols < 0 {
		cols = 0
	}
	return Size{Kind: Flow, Cols: cols}
}

// FixedSize returns the intrinsic-size constraint
func FixedSize() Size {
	return Size{Kind: Fixed}
}

// String returns a printable form of the constraint
func (s Size) String() string {
	switch s.Kind {
	case Box:
		return fmt.Sprintf("box(%dx%d)", s.Cols, s.Rows)
	case Flow:
		return fmt.Sprintf("flow(%d)", s.Cols)
	default:
		return "fixed()"
	}
}

// sizingError reports a constraint variant the widget does not accept
func sizingError(w Widget, size Size) error {
	return fmt.Errorf("%w: %T does not accept %s", ErrInvariant, w, size)
}

// CheckSize verifies a rendered canvas against its constraint.
// A mismatch is fatal for the render pass, never silently patched
func CheckSize(cv canvas.Canvas, size Size) error {
	switch size.Kind {
	case Box:
		if cv.Width() != size.Cols || cv.Height() != size.Rows {
			return fmt.Errorf("%w: rendered %dx%d for %s",
				ErrInvariant, cv.Width(), cv.Height(), size)
		}
	case Flow:
		if cv.Width() != size.Cols {
			return fmt.Errorf("%w: rendered %d columns for %s",
				ErrInvariant, cv.Width(), size)
		}
	}
	return nil
}
