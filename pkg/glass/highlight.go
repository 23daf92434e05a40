package glass

import (
	"math"

	"github.com/go-drift/glass/pkg/rendering"
)

// circleBaseAngle places the first bright stop toward the upper left on an
// angularly symmetric outline.
const circleBaseAngle = math.Pi + math.Pi/4

// Stop opacity tables. Untinted glass uses the neutral highlight color at
// higher contrast; tinted glass uses a muted, colored sweep. The 0.7 factor
// dims the stop opposite the light source.
const (
	brightStopOpacity = 0.80
	faintStopOpacity  = 0.10

	tintedBrightStopOpacity = 0.50
	tintedFaintStopOpacity  = 0.12

	oppositeStopFactor = 0.7
)

// HighlightGradient computes the angular gradient that simulates a
// directional light sweeping around the outline's perimeter.
//
// base is the neutral highlight color used when tint is transparent. The
// returned gradient is a sweep centered on the outline's rect; opacity
// scales every stop. An empty outline or LightAngleNone yields a single
// fully transparent stop, LightAngleAll a single flat stop.
func HighlightGradient(shape Shape, outline Outline, angle LightAngle, base, tint rendering.Color, opacity float64) *rendering.Gradient {
	center := outline.RRect.Rect.Center()

	if outline.IsEmpty() || angle == LightAngleNone {
		return rendering.NewSweepGradient(center, 0, []rendering.GradientStop{
			{Position: 0, Color: rendering.ColorTransparent},
		})
	}

	bright, faint := stopColors(base, tint, opacity)

	if angle == LightAngleAll {
		return rendering.NewSweepGradient(center, 0, []rendering.GradientStop{
			{Position: 0, Color: bright},
		})
	}

	startAngle, mid1, mid2 := stopLayout(shape, outline)
	startAngle += angle.rotation()

	opposite := bright.WithOpacity(oppositeStopFactor)
	return rendering.NewSweepGradient(center, startAngle, []rendering.GradientStop{
		{Position: 0, Color: bright},
		{Position: mid1, Color: faint},
		{Position: 0.5, Color: opposite},
		{Position: mid2, Color: faint},
		{Position: 1, Color: bright},
	})
}

// stopColors selects the bright and faint stop colors. Tinted and untinted
// glass use different opacity tables, not just different hues.
func stopColors(base, tint rendering.Color, opacity float64) (bright, faint rendering.Color) {
	if !tint.IsTransparent() {
		return tint.WithOpacity(tintedBrightStopOpacity * opacity),
			tint.WithOpacity(tintedFaintStopOpacity * opacity)
	}
	return base.WithOpacity(brightStopOpacity * opacity),
		base.WithOpacity(faintStopOpacity * opacity)
}

// stopLayout computes the start angle and the normalized positions of the
// two faint stops for the outline.
//
// A circle's perimeter is angularly uniform, so its stops sit at fixed
// quarter-turn positions. For a rounded rect or capsule the corner arcs
// subtend a different fraction of the angular parametrization than their
// physical arc length, so the positions are derived from the geometry to
// keep the apparent sweep speed constant across the corner/edge transition.
func stopLayout(shape Shape, outline Outline) (startAngle, mid1, mid2 float64) {
	if shape.Kind == ShapeCircle {
		return circleBaseAngle, 0.25, 0.75
	}

	hw := outline.RRect.Rect.Width() / 2
	hh := outline.RRect.Rect.Height() / 2
	alpha := cornerHalfAngle(hw, hh, outline.Radius)

	startAngle = math.Pi + alpha
	mid1 = (math.Pi - 2*alpha) / (2 * math.Pi)
	mid2 = 0.5 + mid1
	return startAngle, mid1, mid2
}

// cornerHalfAngle is the half-angle subtended by one corner arc in the
// gradient's angular parametrization, for a rect with half-extents hw, hh
// and corner radius r.
func cornerHalfAngle(hw, hh, r float64) float64 {
	sqrt2 := math.Sqrt2
	d := hw - r // horizontal straight-edge half-length
	l := hh - r // vertical straight-edge half-length

	a := sqrt2*l + r
	b := d - l
	t1 := sqrt2 * a
	t2 := a*a + b*b + sqrt2*a*b
	if t2 <= 0 {
		// Zero-extent geometry; fall back to the circle-symmetric layout.
		return math.Pi / 4
	}
	// Rounding at extreme aspect ratios or the circle limit can push the
	// ratio marginally outside asin's domain.
	return math.Asin(clamp(t1/(2*math.Sqrt(t2)), -1, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
