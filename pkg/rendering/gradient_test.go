package rendering

import (
	"math"
	"testing"
)

func TestSweepT(t *testing.T) {
	g := NewSweepGradient(Offset{X: 0, Y: 0}, 0, []GradientStop{
		{Position: 0, Color: ColorWhite},
		{Position: 1, Color: ColorBlack},
	})

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"east", 10, 0, 0},
		{"south", 0, 10, 0.25},
		{"west", -10, 0, 0.5},
		{"north", 0, -10, 0.75},
		{"center", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.sweepT(tt.x, tt.y); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("sweepT(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSweepTStartAngle(t *testing.T) {
	// Start angle rotates the parametrization: a point at the start angle
	// maps to t=0.
	start := math.Pi + math.Pi/4
	g := NewSweepGradient(Offset{}, start, []GradientStop{{Position: 0, Color: ColorWhite}})
	x := math.Cos(start) * 10
	y := math.Sin(start) * 10
	if got := g.sweepT(x, y); math.Abs(got) > 1e-9 && math.Abs(got-1) > 1e-9 {
		t.Errorf("sweepT at start angle = %v, want 0", got)
	}
}

func TestColorAtOffsetInterpolation(t *testing.T) {
	stops := []GradientStop{
		{Position: 0, Color: RGBA(0, 0, 0, 0)},
		{Position: 1, Color: RGBA(200, 100, 50, 255)},
	}

	if got := colorAtOffset(stops, -0.5); got != stops[0].Color {
		t.Errorf("below range: got %v, want first stop", got)
	}
	if got := colorAtOffset(stops, 1.5); got != stops[1].Color {
		t.Errorf("above range: got %v, want last stop", got)
	}

	mid := colorAtOffset(stops, 0.5)
	r, _, _, a := mid.RGBAF()
	if math.Abs(a-0.5) > 0.01 {
		t.Errorf("mid alpha = %v, want ~0.5", a)
	}
	if math.Abs(r-100.0/255) > 0.01 {
		t.Errorf("mid red = %v, want ~0.39", r)
	}
}

func TestColorAtOffsetEdgeCases(t *testing.T) {
	if got := colorAtOffset(nil, 0.5); got != ColorTransparent {
		t.Errorf("no stops: got %v, want transparent", got)
	}
	single := []GradientStop{{Position: 0.3, Color: ColorWhite}}
	if got := colorAtOffset(single, 0.9); got != ColorWhite {
		t.Errorf("single stop: got %v, want white", got)
	}
	coincident := []GradientStop{
		{Position: 0.5, Color: ColorWhite},
		{Position: 0.5, Color: ColorBlack},
	}
	if got := colorAtOffset(coincident, 0.5); got != ColorWhite {
		t.Errorf("coincident stops: got %v, want first", got)
	}
}

func TestGradientIsValid(t *testing.T) {
	stops := []GradientStop{
		{Position: 0, Color: ColorWhite},
		{Position: 1, Color: ColorBlack},
	}
	tests := []struct {
		name string
		g    *Gradient
		want bool
	}{
		{"nil", nil, false},
		{"sweep", NewSweepGradient(Offset{}, 0, stops), true},
		{"sweep single stop", NewSweepGradient(Offset{}, 0, stops[:1]), true},
		{"linear", NewLinearGradient(Offset{}, Offset{X: 1}, stops), true},
		{"radial zero radius", NewRadialGradient(Offset{}, 0, stops), false},
		{"no stops", &Gradient{Type: GradientTypeSweep}, false},
		{"out of range stop", NewSweepGradient(Offset{}, 0, []GradientStop{{Position: 1.5, Color: ColorWhite}}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientColorAtSweepWrap(t *testing.T) {
	// Stops bright at both ends: colors just before and after the start
	// angle should match across the wrap.
	stops := []GradientStop{
		{Position: 0, Color: ColorWhite},
		{Position: 0.5, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	}
	g := NewSweepGradient(Offset{}, 0, stops)

	before := g.ColorAt(math.Cos(-0.01)*10, math.Sin(-0.01)*10)
	after := g.ColorAt(math.Cos(0.01)*10, math.Sin(0.01)*10)
	_, _, _, aBefore := before.RGBAF()
	_, _, _, aAfter := after.RGBAF()
	if math.Abs(aBefore-aAfter) > 0.05 {
		t.Errorf("wrap discontinuity: %v vs %v", aBefore, aAfter)
	}
}

func TestCloneGradientStops(t *testing.T) {
	stops := []GradientStop{{Position: 0, Color: ColorWhite}}
	g := NewSweepGradient(Offset{}, 0, stops)
	stops[0].Color = ColorBlack
	if g.Sweep.Stops[0].Color != ColorWhite {
		t.Error("constructor should copy stops")
	}
}
