// Package widget defines the sizing/rendering protocol of the toolkit:
// the contract between containers and children for negotiating space,
// rendering to canvases, and routing input along the focus path.
//
// A render pass is a pure function of (tree, size constraint, focus
// path): no widget stores per-frame state, and the focus path lives
// outside the tree. Containers derive each child's constraint, render
// children to canvases, and compose the results with canvas operations
package widget

import (
	"github.com/lixenwraith/loom/canvas"
)

// Widget is implemented by every node of the widget tree
type Widget interface {
	// Sizing advertises which constraint variants Render accepts.
	// Requesting an unsupported variant is a contract violation
	Sizing() Sizing

	// Render produces the canvas for the given constraint and focus.
	// The result must match the constraint exactly (CheckSize)
	Render(size Size, focus Focus) (canvas.Canvas, error)
}

// RowCounter is implemented by flow-capable widgets: the row count the
// widget will occupy at the given width, queried by containers that must
// know child heights before laying out siblings
type RowCounter interface {
	Rows(cols int, focus bool) int
}

// KeyHandler is implemented by widgets that consume key events.
// Containers forward along the focus path; leaves act on the event
type KeyHandler interface {
	HandleKey(size Size, ev KeyEvent, focus Focus) bool
}

// MouseHandler is implemented by widgets that consume mouse events.
// Containers recompute child geometry, translate coordinates, and
// forward to the child under the pointer. The returned path locates the
// widget that handled the event, for click-to-focus
type MouseHandler interface {
	HandleMouse(size Size, ev MouseEvent, focus Focus) (Path, bool)
}

// RenderRoot renders the tree at the given constraint and verifies the
// root canvas honors it. Errors from any depth propagate here untouched
func RenderRoot(w Widget, size Size, focus Focus) (canvas.Canvas, error) {
	cv, err := w.Render(size, focus)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := CheckSize(cv, size); err != nil {
		return canvas.Canvas{}, err
	}
	return cv, nil
}

// DispatchKey routes a key event down the focus path
func DispatchKey(w Widget, size Size, focus Focus, ev KeyEvent) bool {
	h, ok := w.(KeyHandler)
	if !ok {
		return false
	}
	return h.HandleKey(size, ev, focus)
}

// DispatchMouse routes a mouse event through the tree by hit test.
// The returned path identifies the handling widget and can be installed
// as the new focus path by the caller
func DispatchMouse(w Widget, size Size, focus Focus, ev MouseEvent) (Path, bool) {
	h, ok := w.(MouseHandler)
	if !ok {
		return nil, false
	}
	return h.HandleMouse(size, ev, focus)
}

// rowsOf queries a child's flow height, defaulting to zero for widgets
// that cannot flow
func rowsOf(w Widget, cols int, focus bool) int {
	if rc, ok := w.(RowCounter); ok {
		return rc.Rows(cols, focus)
	}
	return 0
}

// blankCell is the fill used for alignment padding between children
var blankCell = canvas.Cell{Text: " "}
