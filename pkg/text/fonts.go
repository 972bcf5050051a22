package text

import "os"

// FontConfig holds paths to font files used when a surface draws text.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// DefaultFontConfig looks for commonly installed font families. Surfaces
// skip text drawing when the chosen path does not load, so an empty result
// is usable.
func DefaultFontConfig() FontConfig {
	return FontConfig{
		Regular: firstExisting(
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/Library/Fonts/Arial.ttf",
		),
		Bold: firstExisting(
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			"/Library/Fonts/Arial Bold.ttf",
		),
		Italic: firstExisting(
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans-Oblique.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Oblique.ttf",
		),
		BoldItalic: firstExisting(
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-BoldOblique.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans-BoldOblique.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-BoldOblique.ttf",
		),
	}
}

// FontPath returns the configured path for the given style combination,
// falling back to the regular face when a variant is missing.
func (fc FontConfig) FontPath(bold, italic bool) string {
	if bold && italic && fc.BoldItalic != "" {
		return fc.BoldItalic
	}
	if bold && fc.Bold != "" {
		return fc.Bold
	}
	if italic && fc.Italic != "" {
		return fc.Italic
	}
	return fc.Regular
}

func firstExisting(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
