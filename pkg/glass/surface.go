package glass

import (
	"github.com/go-drift/glass/pkg/rendering"
	"github.com/go-drift/glass/pkg/theme"
)

// Layer parameters. The layer order in Compose is load-bearing: material,
// tint wash, and highlight fill must stay beneath the gradient stroke, and
// the hover fill sits directly beneath the stroke.
const (
	// materialBlurSigma is the backdrop blur applied beneath the material
	// fill.
	materialBlurSigma = 12.0

	// tintWashOpacity scales the tint wash fill.
	tintWashOpacity = 0.2

	// highlightFillOpacity scales the flat highlight fill.
	highlightFillOpacity = 0.75

	// strokeWidth is the width of the gradient stroke. The stroke path is
	// inset by half this width so the stroke sits fully inside the fill.
	strokeWidth = 1.5

	// shadowBlurRadius and shadowOffsetY define the soft drop shadow.
	shadowBlurRadius = 15.0
	shadowOffsetY    = 6.0
)

// Appearance carries the caller-supplied glass parameters plus the ambient
// color scheme.
type Appearance struct {
	// Tint is an optional wash color; the zero value (transparent) means
	// untinted neutral glass.
	Tint rendering.Color

	// Opacity scales the tint wash, highlight fill, and gradient stroke.
	// Values outside [0, 1] are clamped.
	Opacity float64

	// Brightness is the ambient light/dark scheme, read from the host
	// environment at render time.
	Brightness theme.Brightness
}

// clampedOpacity returns the appearance opacity clamped to [0, 1].
func (a Appearance) clampedOpacity() float64 {
	return clamp(a.Opacity, 0, 1)
}

// Compose renders the glass surface for the given shape and bounding rect
// into a display list.
//
// Layers, back to front: drop shadow, blurred backdrop with material fill,
// tint wash (when tinted), highlight fill, hover fill (when hovering),
// gradient stroke. A degenerate rect produces an empty display list.
// Compose is pure: identical inputs yield identical op sequences.
func Compose(shape Shape, rect rendering.Rect, appearance Appearance, angle LightAngle, hovering bool) *rendering.DisplayList {
	var recorder rendering.PictureRecorder
	canvas := recorder.BeginRecording(rect.Size())

	outline := shape.Outline(rect, 0)
	if outline.IsEmpty() {
		return recorder.EndRecording()
	}

	scheme := theme.GlassSchemeFor(appearance.Brightness)
	opacity := appearance.clampedOpacity()

	canvas.DrawRRectShadow(outline.RRect, rendering.BoxShadow{
		Color:      scheme.Shadow,
		Offset:     rendering.Offset{X: 0, Y: shadowOffsetY},
		BlurRadius: shadowBlurRadius,
	})

	canvas.Save()
	canvas.ClipRRect(outline.RRect)

	// Frost the backdrop, then lay the material over it.
	canvas.SaveLayerBlur(outline.RRect.Rect, materialBlurSigma, materialBlurSigma)
	canvas.Restore()
	canvas.DrawRRect(outline.RRect, fillPaint(scheme.Material))

	if !appearance.Tint.IsTransparent() {
		canvas.DrawRRect(outline.RRect, fillPaint(appearance.Tint.WithOpacity(tintWashOpacity*opacity)))
	}

	canvas.DrawRRect(outline.RRect, fillPaint(scheme.Highlight.WithOpacity(highlightFillOpacity*opacity)))

	if hovering {
		canvas.DrawRRect(outline.RRect, fillPaint(scheme.Hover))
	}

	canvas.Restore()

	strokeOutline := shape.Outline(rect, Inset(0).Grow(strokeWidth/2))
	if !strokeOutline.IsEmpty() {
		gradient := HighlightGradient(shape, strokeOutline, angle, scheme.Highlight, appearance.Tint, opacity)
		canvas.DrawPath(strokeOutline.Path(), rendering.Paint{
			Color:       rendering.ColorWhite,
			Gradient:    gradient,
			Style:       rendering.PaintStyleStroke,
			StrokeWidth: strokeWidth,
			BlendMode:   rendering.BlendModePlus,
			Alpha:       1,
		})
	}

	return recorder.EndRecording()
}

func fillPaint(color rendering.Color) rendering.Paint {
	paint := rendering.DefaultPaint()
	paint.Color = color
	return paint
}
