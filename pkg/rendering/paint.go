package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// BlendMode controls how source and destination colors are composited.
type BlendMode int

const (
	// BlendModeSrcOver draws the source over the destination (default).
	BlendModeSrcOver BlendMode = iota

	// BlendModePlus adds source to destination component-wise, clamped at
	// full intensity. Bright gradient stops lighten rather than cover.
	BlendModePlus
)

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendModeSrcOver:
		return "src_over"
	case BlendModePlus:
		return "plus"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(b))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint is a transparent fill and draws nothing visible.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Gradient    *Gradient  // If set, overrides Color for the fill
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels

	// Compositing
	BlendMode BlendMode // Compositing mode; 0 = BlendModeSrcOver
	Alpha     float64   // Overall opacity 0.0-1.0; negative defaults to 1.0
}

// DefaultPaint returns a basic opaque white fill paint with standard compositing.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		BlendMode:   BlendModeSrcOver,
		Alpha:       1.0,
	}
}

// EffectiveAlpha returns the paint's overall opacity, defaulting negative
// values to fully opaque.
func (p Paint) EffectiveAlpha() float64 {
	if p.Alpha < 0 {
		return 1
	}
	if p.Alpha > 1 {
		return 1
	}
	return p.Alpha
}
