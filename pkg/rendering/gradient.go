package rendering

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
	// GradientTypeSweep indicates an angular (conic) gradient.
	GradientTypeSweep
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	case GradientTypeSweep:
		return "sweep"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// SweepGradient defines an angular gradient around a center point.
//
// Colors sweep a full turn starting at StartAngle (radians, measured from
// the positive x axis, y pointing down). Stop positions are fractions of
// the full turn.
type SweepGradient struct {
	Center     Offset
	StartAngle float64
	Stops      []GradientStop
}

// Gradient describes a linear, radial, or sweep gradient.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
	Radial RadialGradient
	Sweep  SweepGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeRadial,
		Radial: RadialGradient{
			Center: center,
			Radius: radius,
			Stops:  cloneGradientStops(stops),
		},
	}
}

// NewSweepGradient constructs an angular gradient definition.
func NewSweepGradient(center Offset, startAngle float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeSweep,
		Sweep: SweepGradient{
			Center:     center,
			StartAngle: startAngle,
			Stops:      cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	case GradientTypeSweep:
		return g.Sweep.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) == 0 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	switch g.Type {
	case GradientTypeLinear, GradientTypeRadial, GradientTypeSweep:
		return true
	default:
		return false
	}
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}

// ColorAt evaluates the gradient at a point in the same coordinate space as
// the gradient geometry. Positions outside the gradient extent are padded
// with the nearest edge color.
func (g *Gradient) ColorAt(x, y float64) Color {
	if g == nil {
		return ColorTransparent
	}
	switch g.Type {
	case GradientTypeLinear:
		return colorAtOffset(g.Linear.Stops, g.linearT(x, y))
	case GradientTypeRadial:
		return colorAtOffset(g.Radial.Stops, g.radialT(x, y))
	case GradientTypeSweep:
		return colorAtOffset(g.Sweep.Stops, g.sweepT(x, y))
	default:
		return ColorTransparent
	}
}

func (g *Gradient) linearT(x, y float64) float64 {
	dx := g.Linear.End.X - g.Linear.Start.X
	dy := g.Linear.End.Y - g.Linear.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((x-g.Linear.Start.X)*dx + (y-g.Linear.Start.Y)*dy) / lenSq
}

func (g *Gradient) radialT(x, y float64) float64 {
	if g.Radial.Radius <= 0 {
		return 0
	}
	dx := x - g.Radial.Center.X
	dy := y - g.Radial.Center.Y
	return math.Hypot(dx, dy) / g.Radial.Radius
}

// sweepT maps the angle from the sweep center to a gradient parameter in
// [0, 1). The angle at the exact center is undefined; the first stop wins.
func (g *Gradient) sweepT(x, y float64) float64 {
	dx := x - g.Sweep.Center.X
	dy := y - g.Sweep.Center.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	relative := math.Atan2(dy, dx) - g.Sweep.StartAngle
	twoPi := 2 * math.Pi
	for relative < 0 {
		relative += twoPi
	}
	for relative >= twoPi {
		relative -= twoPi
	}
	return relative / twoPi
}

// colorAtOffset returns the interpolated color at parameter t with pad
// extension. Stops are assumed sorted by position, which every constructor
// in this module guarantees.
func colorAtOffset(stops []GradientStop, t float64) Color {
	if len(stops) == 0 {
		return ColorTransparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Position {
			prev := stops[i-1]
			span := stops[i].Position - prev.Position
			if span <= 0 {
				return prev.Color
			}
			return lerpColor(prev.Color, stops[i].Color, (t-prev.Position)/span)
		}
	}
	return last.Color
}

// lerpColor interpolates between two colors component-wise in sRGB space.
func lerpColor(c1, c2 Color, t float64) Color {
	r1, g1, b1, a1 := c1.RGBAF()
	r2, g2, b2, a2 := c2.RGBAF()
	toByte := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*maxByte + 0.5)
	}
	return RGBA(
		toByte(r1+t*(r2-r1)),
		toByte(g1+t*(g2-g1)),
		toByte(b1+t*(b2-b1)),
		toByte(a1+t*(a2-a1)),
	)
}
