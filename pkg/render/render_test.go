package render

import (
	"image"
	"reflect"
	"testing"

	"wren/pkg/css"
	"wren/pkg/paint"
)

// fakeSurface records every call the display list executor makes.
type fakeSurface struct {
	width, height int
	calls         []string
	fills         []paint.RectCommand
	texts         []paint.TextCommand
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h}
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) Clear() { s.calls = append(s.calls, "clear") }

func (s *fakeSurface) FillRect(x, y, w, h float64, color css.Color) {
	s.calls = append(s.calls, "fill")
	s.fills = append(s.fills, paint.RectCommand{X: x, Y: y, Width: w, Height: h, Color: color})
}

func (s *fakeSurface) StrokeRect(x, y, w, h, lineWidth float64, color css.Color) {
	s.calls = append(s.calls, "stroke")
}

func (s *fakeSurface) DrawText(text string, x, y float64, font paint.Font, color css.Color) {
	s.calls = append(s.calls, "text")
	s.texts = append(s.texts, paint.TextCommand{X: x, Y: y, Text: text, Font: font, Color: color})
}

func (s *fakeSurface) DrawImage(img image.Image, x, y, w, h float64) {
	s.calls = append(s.calls, "image")
}

func TestRender_ClearsThenDraws(t *testing.T) {
	surface := newFakeSurface(800, 600)
	err := Render(`<div style="background: red">hello</div>`, "", surface)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(surface.calls) != 3 {
		t.Fatalf("expected clear+fill+text, got %v", surface.calls)
	}
	if surface.calls[0] != "clear" {
		t.Errorf("surface must be cleared first, got %v", surface.calls)
	}
	if surface.calls[1] != "fill" || surface.calls[2] != "text" {
		t.Errorf("background must draw before text, got %v", surface.calls)
	}
	if surface.texts[0].Text != "hello" {
		t.Errorf("expected text 'hello', got %q", surface.texts[0].Text)
	}
}

func TestRender_NilSurface(t *testing.T) {
	if err := Render("<p>x</p>", "", nil); err == nil {
		t.Error("expected error for a nil surface")
	}
}

func TestRender_UnusableDimensions(t *testing.T) {
	if err := Render("<p>x</p>", "", newFakeSurface(0, 600)); err == nil {
		t.Error("expected error for zero-width surface")
	}
	if err := Render("<p>x</p>", "", newFakeSurface(800, -1)); err == nil {
		t.Error("expected error for negative-height surface")
	}
}

func TestRender_GarbageInputStillRenders(t *testing.T) {
	surface := newFakeSurface(800, 600)
	err := Render("<<<not <html<", "}}} garbage {", surface)
	if err != nil {
		t.Errorf("lenient parsing must never fail the render, got %v", err)
	}
	if len(surface.calls) == 0 || surface.calls[0] != "clear" {
		t.Errorf("even garbage input must clear the surface, got %v", surface.calls)
	}
}

func TestEngine_StylesheetApplied(t *testing.T) {
	engine := NewEngine()
	list := engine.DisplayList(`<p class="warn">careful</p>`, ".warn { color: red }", 800, 600)
	var text paint.TextCommand
	found := false
	for _, cmd := range list {
		if tc, ok := cmd.(paint.TextCommand); ok {
			text = tc
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a text command, got %+v", list)
	}
	if text.Color != (css.Color{R: 255, A: 1}) {
		t.Errorf("caller stylesheet must apply, got %+v", text.Color)
	}
}

func TestEngine_DocumentStyleApplied(t *testing.T) {
	engine := NewEngine()
	list := engine.DisplayList(
		`<div><style>p { color: blue }</style><p>inked</p></div>`, "", 800, 600)
	for _, cmd := range list {
		if tc, ok := cmd.(paint.TextCommand); ok {
			if tc.Color != (css.Color{B: 255, A: 1}) {
				t.Errorf("document <style> must apply, got %+v", tc.Color)
			}
			return
		}
	}
	t.Fatalf("expected a text command, got %+v", list)
}

func TestEngine_DocumentStyleWinsSourceOrderTie(t *testing.T) {
	engine := NewEngine()
	list := engine.DisplayList(
		`<div><style>p { color: blue }</style><p>inked</p></div>`,
		"p { color: red }", 800, 600)
	for _, cmd := range list {
		if tc, ok := cmd.(paint.TextCommand); ok {
			if tc.Color != (css.Color{B: 255, A: 1}) {
				t.Errorf("document style comes later in source order, got %+v", tc.Color)
			}
			return
		}
	}
	t.Fatal("expected a text command")
}

func TestEngine_DisplayListDeterministic(t *testing.T) {
	engine := NewEngine()
	markup := `<div style="background: gray"><h1>Title</h1><p>Body text</p></div>`
	first := engine.DisplayList(markup, "h1 { color: navy }", 800, 600)
	second := engine.DisplayList(markup, "h1 { color: navy }", 800, 600)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical display lists")
	}
	if len(first) == 0 {
		t.Error("expected a non-empty display list")
	}
}

func TestEngine_WithImageLoaderNil(t *testing.T) {
	engine := NewEngine(WithImageLoader(nil))
	list := engine.DisplayList(`<img src="x.png" width="10" height="10">`, "", 800, 600)
	for _, cmd := range list {
		if _, ok := cmd.(paint.ImageCommand); ok {
			t.Error("nil loader must disable image painting")
		}
	}
}
