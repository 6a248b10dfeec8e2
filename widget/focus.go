package widget

// Path is a sequence of child selectors from the root to the focused
// leaf. It is auxiliary state owned by the caller, never stored on
// widget tree nodes
type Path []int

// Focus carries the focus state threaded through a render pass.
// A widget is focused when it lies on the focus path; the path suffix
// selects which of its children continues the path
type Focus struct {
	path    Path
	focused bool
}

// FocusPath returns the root focus value for a render pass
func FocusPath(p Path) Focus {
	return Focus{path: p, focused: true}
}

// NoFocus returns the tree-wide no-focus state
func NoFocus() Focus {
	return Focus{}
}

// Focused returns true if the receiving widget lies on the focus path
func (f Focus) Focused() bool {
	return f.focused
}

// Next returns the selector of the focused child and the focus value to
// pass it. ok is false when focus rests on this widget itself or the
// widget is not on the focus path
func (f Focus) Next() (int, Focus, bool) {
	if !f.focused || len(f.path) == 0 {
		return 0, Focus{}, false
	}
	return f.path[0], Focus{path: f.path[1:], focused: true}, true
}

// Child returns the focus value for child i
func (f Focus) Child(i int) Focus {
	if sel, next, ok := f.Next(); ok && sel == i {
		return next
	}
	return Focus{}
}
