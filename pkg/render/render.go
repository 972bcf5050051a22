// Package render ties the pipeline together: HTML string + CSS string in,
// paint commands executed against a surface out. Each Render call is a pure
// function of its inputs plus the surface dimensions; no state is shared
// between calls.
package render

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"wren/pkg/css"
	"wren/pkg/html"
	"wren/pkg/images"
	"wren/pkg/layout"
	"wren/pkg/paint"
	"wren/pkg/style"
)

// Engine runs the rendering pipeline. The zero-value-ish default engine
// (NewEngine with no options) logs nothing and loads local images only.
type Engine struct {
	logger *zap.Logger
	loader paint.ImageLoader
}

type Option func(*Engine)

// WithLogger attaches a structured logger; stage timings log at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithImageLoader replaces the image loader used for <img> elements.
// Passing nil disables image painting entirely.
func WithImageLoader(loader paint.ImageLoader) Option {
	return func(e *Engine) { e.loader = loader }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: zap.NewNop(),
		loader: images.NewLoader(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render runs all eight stages and executes the display list against the
// surface. Parsing is lenient and never fails; Render errors only for an
// unusable surface. The caller is expected to catch the error and paint its
// own fallback.
func (e *Engine) Render(htmlSrc, cssSrc string, surface paint.Surface) error {
	if surface == nil {
		return fmt.Errorf("render: nil surface")
	}
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: unusable surface dimensions %dx%d", width, height)
	}

	commands := e.displayList(htmlSrc, cssSrc, float64(width), float64(height))
	paint.Execute(commands, surface)
	return nil
}

// DisplayList runs the pipeline up to (but not including) surface execution
// and returns the flat command list. Useful for tests and tooling.
func (e *Engine) DisplayList(htmlSrc, cssSrc string, viewportWidth, viewportHeight float64) []paint.Command {
	return e.displayList(htmlSrc, cssSrc, viewportWidth, viewportHeight)
}

func (e *Engine) displayList(htmlSrc, cssSrc string, viewportWidth, viewportHeight float64) []paint.Command {
	start := time.Now()

	dom, docSheets := html.ParseDocument(htmlSrc)

	// The caller's stylesheet comes first; <style> blocks from the document
	// are appended after it, so they win source-order ties.
	sheet := css.ParseStylesheet(cssSrc)
	for _, src := range docSheets {
		docSheet := css.ParseStylesheet(src)
		sheet.Rules = append(sheet.Rules, docSheet.Rules...)
	}

	styled := style.Tree(dom, sheet)
	laidOut := layout.Tree(styled, viewportWidth, viewportHeight)

	painter := &paint.Painter{Images: e.loader}
	commands := painter.BuildDisplayList(laidOut)

	e.logger.Debug("pipeline complete",
		zap.Int("rules", len(sheet.Rules)),
		zap.Int("commands", len(commands)),
		zap.Duration("elapsed", time.Since(start)))
	return commands
}

// Render runs the pipeline with a default engine.
func Render(htmlSrc, cssSrc string, surface paint.Surface) error {
	return NewEngine().Render(htmlSrc, cssSrc, surface)
}
