package theme

import "github.com/go-drift/glass/pkg/rendering"

// GlassScheme holds the base colors a glass surface derives its layers from.
//
// Every field is a plain value; the renderer recomputes layer colors from
// the scheme on each pass rather than caching derived colors.
type GlassScheme struct {
	// Material is the translucent base fill drawn over the blurred backdrop.
	Material rendering.Color

	// Highlight is the neutral color used for the highlight fill and the
	// untinted gradient stroke stops.
	Highlight rendering.Color

	// Shadow is the drop-shadow color.
	Shadow rendering.Color

	// Hover is the flat fill layered beneath the stroke while a pointer
	// rests on the surface.
	Hover rendering.Color
}

// GlassSchemeFor returns the glass color scheme for the given brightness.
func GlassSchemeFor(brightness Brightness) GlassScheme {
	if brightness == BrightnessDark {
		return GlassScheme{
			Material:  rendering.RGBA(30, 30, 30, 0x8C),
			Highlight: rendering.ColorWhite,
			Shadow:    rendering.ColorBlack.WithAlpha(0x24),
			Hover:     rendering.ColorWhite.WithAlpha(0x17),
		}
	}
	return GlassScheme{
		Material:  rendering.RGBA(255, 255, 255, 0x8C),
		Highlight: rendering.ColorWhite,
		Shadow:    rendering.ColorBlack.WithAlpha(0x33),
		Hover:     rendering.ColorWhite.WithAlpha(0x5C),
	}
}
