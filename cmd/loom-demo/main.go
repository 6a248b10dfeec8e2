// Command loom-demo shows the toolkit end to end: a widget tree rendered
// to canvases, diffed frame to frame, and applied to a tcell screen with
// keyboard and mouse dispatch.
//
// Tab cycles focus, Enter or click presses the focused button, o toggles
// a dialog overlay, q or Escape quits
package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/loom/canvas"
	"github.com/lixenwraith/loom/display"
	"github.com/lixenwraith/loom/text"
	"github.com/lixenwraith/loom/widget"
)

// gradient is a box leaf painting a two-color blend, for showing that
// full-area repaints still diff down to small updates
type gradient struct {
	from, to canvas.Color
}

func (g *gradient) Sizing() widget.Sizing {
	return widget.SizeBox
}

func (g *gradient) Render(size widget.Size, focus widget.Focus) (canvas.Canvas, error) {
	if size.Kind != widget.Box {
		return canvas.Canvas{}, fmt.Errorf("gradient needs a box constraint, got %s", size)
	}
	return canvas.GradientFill(size.Cols, size.Rows, '░', g.from, g.to, canvas.GradientHorizontal), nil
}

type app struct {
	status  *widget.Text
	frame   *widget.Frame
	overlay *widget.Overlay
	dialog  bool

	// focusables are the paths Tab cycles through, relative to the frame
	focusables []widget.Path
	focusIdx   int

	quit bool
}

func newApp() *app {
	a := &app{
		status: &widget.Text{Content: "ready", Wrap: text.WrapClip},
	}

	pressed := func(name string) func() {
		return func() { a.status.Content = name + " pressed" }
	}

	menu := widget.NewPile(
		widget.Packed(widget.NewButton("Say hello", pressed("Say hello"))),
		widget.Packed(widget.NewButton("Dialog", func() { a.dialog = true })),
		widget.Packed(widget.NewButton("Quit", func() { a.quit = true })),
		widget.Packed(widget.NewDivider('─')),
		widget.Packed(a.status),
	)

	body := widget.NewColumns(
		widget.Given(menu, 24),
		widget.Weighted(&widget.Filler{
			Child: widget.NewPadding(&widget.Text{
				Content: "This pane wraps a paragraph of text at word boundaries and " +
					"re-lays it out on every resize. The renderer diffs each frame " +
					"against the last and repaints only the cells that changed.",
				Wrap: text.WrapSpace,
			}, 60),
		}, 1),
		widget.Given(&gradient{from: canvas.RGB(40, 40, 120), to: canvas.RGB(200, 60, 60)}, 20),
	)
	body.Gap = 1

	a.frame = &widget.Frame{
		Header: &widget.Text{
			Content: "loom demo",
			Style:   canvas.Style{Attr: canvas.AttrBold | canvas.AttrReverse},
			Align:   text.AlignCenter,
			Wrap:    text.WrapClip,
		},
		Body: body,
		Footer: &widget.Text{
			Content: "tab: focus  enter: press  o: dialog  q: quit",
			Style:   canvas.Style{Attr: canvas.AttrDim},
			Wrap:    text.WrapClip,
		},
	}

	dialogBody := widget.NewPile(
		widget.Packed(&widget.Text{Content: "Dialog overlay", Align: text.AlignCenter, Wrap: text.WrapClip}),
		widget.Packed(widget.NewDivider('─')),
		widget.Packed(widget.NewButton("Close", func() { a.dialog = false })),
	)
	a.overlay = widget.NewOverlay(a.frame, dialogBody, 30, 0)

	a.focusables = []widget.Path{
		{1, 0, 0}, // menu buttons inside the frame body
		{1, 0, 1},
		{1, 0, 2},
	}
	return a
}

// root returns the widget tree for the current mode
func (a *app) root() widget.Widget {
	if a.dialog {
		return a.overlay
	}
	return a.frame
}

// focusPath returns the current focus path rooted at root()
func (a *app) focusPath() widget.Path {
	if a.dialog {
		return widget.Path{1, 2} // dialog close button
	}
	return a.focusables[a.focusIdx]
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := newApp()
	differ := display.NewDiffer(display.DefaultOptions())
	applier := display.NewScreenApplier(screen)
	var mouse display.MouseTranslator

	cols, rows := screen.Size()
	for !a.quit {
		size := widget.BoxSize(cols, rows)
		cv, err := widget.RenderRoot(a.root(), size, widget.FocusPath(a.focusPath()))
		if err != nil {
			screen.Fini()
			log.Fatalf("render: %v", err)
		}
		applier.Apply(differ.Frame(cv))

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			cols, rows = ev.Size()
			screen.Sync()
			differ.Reset()
		case *tcell.EventKey:
			kev, ok := display.TranslateKey(ev)
			if !ok {
				continue
			}
			a.handleKey(size, kev)
		case *tcell.EventMouse:
			mev, ok := mouse.Translate(ev)
			if !ok {
				continue
			}
			a.handleMouse(size, mev)
		}
	}
}

func (a *app) handleKey(size widget.Size, ev widget.KeyEvent) {
	// Focused widget gets the event first; navigation keys are global
	if widget.DispatchKey(a.root(), size, widget.FocusPath(a.focusPath()), ev) {
		return
	}
	switch {
	case ev.Key == widget.KeyEscape, ev.Key == widget.KeyRune && ev.Rune == 'q':
		if a.dialog {
			a.dialog = false
		} else {
			a.quit = true
		}
	case ev.Key == widget.KeyRune && ev.Rune == 'o':
		a.dialog = !a.dialog
	case ev.Key == widget.KeyTab, ev.Key == widget.KeyDown:
		if !a.dialog {
			a.focusIdx = (a.focusIdx + 1) % len(a.focusables)
		}
	case ev.Key == widget.KeyBacktab, ev.Key == widget.KeyUp:
		if !a.dialog {
			a.focusIdx = (a.focusIdx + len(a.focusables) - 1) % len(a.focusables)
		}
	}
}

func (a *app) handleMouse(size widget.Size, ev widget.MouseEvent) {
	path, ok := widget.DispatchMouse(a.root(), size, widget.FocusPath(a.focusPath()), ev)
	if !ok || a.dialog {
		return
	}
	// Click-to-focus: adopt the handling widget's path when it is one of
	// the cycleable targets
	for i, p := range a.focusables {
		if pathEqual(p, path) {
			a.focusIdx = i
			return
		}
	}
}

func pathEqual(a, b widget.Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
