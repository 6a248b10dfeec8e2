package widget

import (
	"errors"
	"testing"

	"github.com/lixenwraith/loom/canvas"
	"github.com/lixenwraith/loom/text"
)

// boxStub is a box leaf for container tests, filling with one rune and
// optionally placing a cursor at its origin
type boxStub struct {
	ch     rune
	cursor bool
	got    []Size
}

func (s *boxStub) Sizing() Sizing { return SizeBox }

func (s *boxStub) Render(size Size, focus Focus) (canvas.Canvas, error) {
	if size.Kind != Box {
		return canvas.Canvas{}, sizingError(s, size)
	}
	s.got = append(s.got, size)
	cv := canvas.SolidFill(size.Cols, size.Rows, canvas.Cell{Text: string(s.ch)})
	if s.cursor {
		cv = cv.WithCursor(canvas.Position{})
	}
	return cv, nil
}

func TestCheckSize(t *testing.T) {
	cv := canvas.SolidFill(4, 2, canvas.Cell{Text: "."})
	tests := []struct {
		name string
		size Size
		ok   bool
	}{
		{"box match", BoxSize(4, 2), true},
		{"box wrong rows", BoxSize(4, 3), false},
		{"box wrong cols", BoxSize(5, 2), false},
		{"flow match", FlowSize(4), true},
		{"flow wrong cols", FlowSize(3), false},
		{"fixed always ok", FixedSize(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSize(cv, tt.size)
			if (err == nil) != tt.ok {
				t.Errorf("CheckSize = %v, ok = %v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvariant) {
				t.Errorf("error = %v, want ErrInvariant", err)
			}
		})
	}
}

func TestUnsupportedConstraint(t *testing.T) {
	s := &boxStub{ch: 'x'}
	_, err := s.Render(FlowSize(5), NoFocus())
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("error = %v, want ErrInvariant", err)
	}
	if !s.Sizing().Supports(Box) || s.Sizing().Supports(Flow) {
		t.Errorf("Sizing = %v, want box only", s.Sizing())
	}
}

func TestFocusPath(t *testing.T) {
	f := FocusPath(Path{2, 0})
	if !f.Focused() {
		t.Fatal("root focus not focused")
	}

	sel, next, ok := f.Next()
	if !ok || sel != 2 {
		t.Fatalf("Next = %d, %v", sel, ok)
	}
	if !next.Focused() {
		t.Error("child focus not focused")
	}

	if !f.Child(2).Focused() {
		t.Error("on-path child not focused")
	}
	if f.Child(1).Focused() {
		t.Error("off-path child focused")
	}

	sel, leaf, ok := next.Next()
	if !ok || sel != 0 {
		t.Fatalf("second Next = %d, %v", sel, ok)
	}
	if _, _, ok := leaf.Next(); ok {
		t.Error("exhausted path still yields a child")
	}

	if NoFocus().Focused() {
		t.Error("NoFocus reports focused")
	}
}

func TestTextWidget(t *testing.T) {
	w := NewText("hello world")
	if w.Rows(5, false) != 2 {
		t.Errorf("Rows(5) = %d, want 2", w.Rows(5, false))
	}

	cv, err := w.Render(FlowSize(5), NoFocus())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := cv.String(); got != "hello\nworld" {
		t.Errorf("String() = %q", got)
	}

	_, err = w.Render(BoxSize(5, 2), NoFocus())
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("box render error = %v, want ErrInvariant", err)
	}
}

func TestTextWidgetAlignment(t *testing.T) {
	w := &Text{Content: "hi", Align: text.AlignCenter, Wrap: text.WrapClip}
	cv, err := w.Render(FlowSize(6), NoFocus())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := cv.String(); got != "  hi  " {
		t.Errorf("String() = %q, want %q", got, "  hi  ")
	}
}

func TestButtonRender(t *testing.T) {
	b := NewButton("OK", nil)

	cv, err := b.Render(FlowSize(8), NoFocus())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := cv.String(); got != "< OK >  " {
		t.Errorf("String() = %q", got)
	}
	if _, ok := cv.Cursor(); ok {
		t.Error("unfocused button placed a cursor")
	}

	cv, err = b.Render(FlowSize(8), FocusPath(nil))
	if err != nil {
		t.Fatalf("focused Render: %v", err)
	}
	if pos, ok := cv.Cursor(); !ok || pos != (canvas.Position{X: 2, Y: 0}) {
		t.Errorf("cursor = %+v, %v, want (2,0)", pos, ok)
	}
	if cv.Cells(0)[0].Style.Attr&canvas.AttrReverse == 0 {
		t.Error("focused button missing reverse attribute")
	}
}

func TestButtonPress(t *testing.T) {
	pressed := 0
	b := NewButton("go", func() { pressed++ })

	tests := []struct {
		name string
		ev   KeyEvent
		foc  Focus
		want bool
	}{
		{"enter focused", KeyEvent{Key: KeyEnter}, FocusPath(nil), true},
		{"space focused", KeyEvent{Key: KeyRune, Rune: ' '}, FocusPath(nil), true},
		{"other rune", KeyEvent{Key: KeyRune, Rune: 'x'}, FocusPath(nil), false},
		{"enter unfocused", KeyEvent{Key: KeyEnter}, NoFocus(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := pressed
			got := b.HandleKey(FlowSize(10), tt.ev, tt.foc)
			if got != tt.want {
				t.Errorf("HandleKey = %v, want %v", got, tt.want)
			}
			if fired := pressed > before; fired != tt.want {
				t.Errorf("pressed = %v, want %v", fired, tt.want)
			}
		})
	}

	path, ok := b.HandleMouse(FlowSize(10), MouseEvent{X: 1, Button: MouseBtnLeft, Action: MouseActionPress}, NoFocus())
	if !ok || len(path) != 0 {
		t.Errorf("HandleMouse = %v, %v, want empty path handled", path, ok)
	}
	if _, ok := b.HandleMouse(FlowSize(10), MouseEvent{Button: MouseBtnRight, Action: MouseActionPress}, NoFocus()); ok {
		t.Error("right click pressed the button")
	}
}

func TestSolidAndDivider(t *testing.T) {
	s := NewSolid('#', canvas.Style{})
	cv, err := s.Render(BoxSize(3, 2), NoFocus())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := cv.String(); got != "###\n###" {
		t.Errorf("solid = %q", got)
	}

	d := NewDivider('─')
	if d.Rows(10, false) != 1 {
		t.Errorf("divider Rows = %d, want 1", d.Rows(10, false))
	}
	cv, err = d.Render(FlowSize(4), NoFocus())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := cv.String(); got != "────" {
		t.Errorf("divider = %q", got)
	}
}

func TestStatic(t *testing.T) {
	inner := canvas.SolidFill(2, 2, canvas.Cell{Text: "z"})
	s := &Static{Canvas: inner}

	cv, err := s.Render(FixedSize(), NoFocus())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !canvas.Equal(cv, inner) {
		t.Error("static altered its canvas")
	}

	_, err = s.Render(BoxSize(2, 2), NoFocus())
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("box render error = %v, want ErrInvariant", err)
	}
}

func TestRenderRoot(t *testing.T) {
	cv, err := RenderRoot(&boxStub{ch: '.'}, BoxSize(3, 2), NoFocus())
	if err != nil {
		t.Fatalf("RenderRoot: %v", err)
	}
	if cv.Width() != 3 || cv.Height() != 2 {
		t.Errorf("dimensions = %dx%d", cv.Width(), cv.Height())
	}

	_, err = RenderRoot(&boxStub{ch: '.'}, FlowSize(3), NoFocus())
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("error = %v, want ErrInvariant", err)
	}
}

func TestSpread(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []int
		want    []int
	}{
		{"even split with remainder", 5, []int{1, 1}, []int{3, 2}},
		{"weighted", 10, []int{1, 2, 2}, []int{2, 4, 4}},
		{"remainder to front", 7, []int{2, 1}, []int{5, 2}},
		{"zero total", 0, []int{1, 1}, []int{0, 0}},
		{"negative total", -3, []int{1}, []int{0}},
		{"no weights", 4, nil, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spread(tt.total, tt.weights)
			if len(got) != len(tt.want) {
				t.Fatalf("spread = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("spread = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
