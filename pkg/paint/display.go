// Package paint builds and executes display lists. The flat ordered command
// list is the sole contract between layout and a drawing surface; later
// commands draw over earlier ones.
package paint

import (
	"image"

	"wren/pkg/css"
)

// Font describes the face used for one text command.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Command is one primitive draw operation.
type Command interface {
	isCommand()
}

// RectCommand fills a rectangle.
type RectCommand struct {
	X, Y, Width, Height float64
	Color               css.Color
}

// BorderCommand strokes a rectangle outline.
type BorderCommand struct {
	X, Y, Width, Height float64
	Color               css.Color
	LineWidth           float64
}

// TextCommand draws a text run; Y is the baseline position.
type TextCommand struct {
	X, Y  float64
	Text  string
	Font  Font
	Color css.Color
}

// ImageCommand draws a decoded image scaled into a rectangle.
type ImageCommand struct {
	X, Y, Width, Height float64
	Image               image.Image
}

func (RectCommand) isCommand()   {}
func (BorderCommand) isCommand() {}
func (TextCommand) isCommand()   {}
func (ImageCommand) isCommand()  {}

// Surface is the 2D drawing target a display list executes against. The
// painter owns the surface for the duration of one Execute call; concurrent
// use must be serialized by the caller.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillRect(x, y, width, height float64, color css.Color)
	StrokeRect(x, y, width, height, lineWidth float64, color css.Color)
	DrawText(text string, x, y float64, font Font, color css.Color)
	DrawImage(img image.Image, x, y, width, height float64)
}

// Execute clears the surface and replays the display list in order.
func Execute(commands []Command, surface Surface) {
	surface.Clear()
	for _, cmd := range commands {
		switch c := cmd.(type) {
		case RectCommand:
			surface.FillRect(c.X, c.Y, c.Width, c.Height, c.Color)
		case BorderCommand:
			surface.StrokeRect(c.X, c.Y, c.Width, c.Height, c.LineWidth, c.Color)
		case TextCommand:
			surface.DrawText(c.Text, c.X, c.Y, c.Font, c.Color)
		case ImageCommand:
			surface.DrawImage(c.Image, c.X, c.Y, c.Width, c.Height)
		}
	}
}
