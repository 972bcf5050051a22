package render

import (
	"image"

	"github.com/fogleman/gg"

	"wren/pkg/css"
	"wren/pkg/paint"
	"wren/pkg/text"
)

// Surface is a raster paint.Surface backed by a gg drawing context.
type Surface struct {
	dc    *gg.Context
	fonts text.FontConfig
}

func NewSurface(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height), fonts: text.DefaultFontConfig()}
}

// NewSurfaceFor draws directly into an existing RGBA image, for hosts that
// own their backing buffer.
func NewSurfaceFor(img *image.RGBA) *Surface {
	return &Surface{dc: gg.NewContextForRGBA(img), fonts: text.DefaultFontConfig()}
}

// SetFonts overrides the font files used for text commands.
func (s *Surface) SetFonts(fonts text.FontConfig) {
	s.fonts = fonts
}

func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Clear paints the whole surface white.
func (s *Surface) Clear() {
	s.dc.SetRGB(1, 1, 1)
	s.dc.Clear()
}

func (s *Surface) FillRect(x, y, width, height float64, color css.Color) {
	s.setColor(color)
	s.dc.DrawRectangle(x, y, width, height)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(x, y, width, height, lineWidth float64, color css.Color) {
	s.setColor(color)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRectangle(x, y, width, height)
	s.dc.Stroke()
}

// DrawText draws one run at the given baseline. If no usable font file is
// configured or it fails to load, the run is skipped rather than failing
// the render.
func (s *Surface) DrawText(str string, x, y float64, font paint.Font, color css.Color) {
	path := s.fonts.FontPath(font.Bold, font.Italic)
	if path == "" {
		return
	}
	if err := s.dc.LoadFontFace(path, font.Size); err != nil {
		return
	}
	s.setColor(color)
	s.dc.DrawString(str, x, y)
}

func (s *Surface) DrawImage(img image.Image, x, y, width, height float64) {
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw <= 0 || ih <= 0 {
		return
	}
	s.dc.Push()
	s.dc.Translate(x, y)
	s.dc.Scale(width/iw, height/ih)
	s.dc.DrawImage(img, 0, 0)
	s.dc.Pop()
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func (s *Surface) setColor(c css.Color) {
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, c.A)
}
