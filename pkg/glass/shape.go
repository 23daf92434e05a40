package glass

import (
	"fmt"
	"math"

	"github.com/go-drift/glass/pkg/rendering"
)

// ShapeKind identifies one of the supported outline shapes.
type ShapeKind int

const (
	// ShapeRoundedRect is a rectangle with four quarter-circle corners.
	ShapeRoundedRect ShapeKind = iota
	// ShapeCircle is a true circle inscribed in the bounding rect.
	ShapeCircle
	// ShapeCapsule is a stadium: a rectangle with two semicircular caps.
	ShapeCapsule
)

// String returns a human-readable representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRoundedRect:
		return "rounded_rect"
	case ShapeCircle:
		return "circle"
	case ShapeCapsule:
		return "capsule"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape describes the outline of a glass surface.
//
// CornerRadius only applies to ShapeRoundedRect; circle and capsule derive
// their radii from the bounding rect at resolve time.
type Shape struct {
	Kind         ShapeKind
	CornerRadius float64
}

// RoundedRect returns a rounded rectangle shape with the given corner
// radius. The radius used at render time never exceeds half the smaller
// dimension of the bounding rect.
func RoundedRect(cornerRadius float64) Shape {
	if cornerRadius < 0 {
		cornerRadius = 0
	}
	return Shape{Kind: ShapeRoundedRect, CornerRadius: cornerRadius}
}

// Circle returns a circle shape.
func Circle() Shape {
	return Shape{Kind: ShapeCircle}
}

// Capsule returns a capsule (stadium) shape.
func Capsule() Shape {
	return Shape{Kind: ShapeCapsule}
}

// Inset is an accumulated inward offset applied to a shape's bounding rect,
// used to pull a stroke fully inside the filled region.
//
// Insets accumulate and clamp at zero: growing by a negative delta can undo
// earlier growth but never pushes the boundary outside the nominal rect.
type Inset float64

// Grow returns the inset increased by delta, clamped at zero.
func (i Inset) Grow(delta float64) Inset {
	total := float64(i) + delta
	if total < 0 {
		return 0
	}
	return Inset(total)
}

// Outline is the resolved boundary of a shape within a bounding rect.
//
// All three shape kinds reduce to a uniform-radius rounded rect: the circle
// becomes a square rect with radius half its side, the capsule a full rect
// with radius half its smaller dimension.
type Outline struct {
	// RRect is the boundary geometry. Empty when the inset collapsed the
	// bounding rect.
	RRect rendering.RRect

	// Radius is the effective corner radius after clamping.
	Radius float64
}

// IsEmpty returns true when the outline encloses no area. Degenerate
// geometry is valid input everywhere in this package and renders nothing.
func (o Outline) IsEmpty() bool {
	return o.RRect.IsEmpty()
}

// Path returns the outline as an arc-based closed path, for stroke
// rendering. Empty outlines yield an empty path.
func (o Outline) Path() *rendering.Path {
	return rendering.RRectPath(o.RRect)
}

// Outline resolves the shape's boundary within rect after applying inset.
//
// If the inset collapses either dimension to zero or below, the returned
// outline is empty; no error is raised.
func (s Shape) Outline(rect rendering.Rect, inset Inset) Outline {
	r := rect.Deflate(float64(inset))
	if r.IsEmpty() {
		return Outline{}
	}
	w := r.Width()
	h := r.Height()
	switch s.Kind {
	case ShapeCircle:
		// Inscribe a true circle even in a non-square rect; the outline
		// must never become an ellipse.
		d := math.Min(w, h)
		c := r.Center()
		square := rendering.RectFromLTWH(c.X-d/2, c.Y-d/2, d, d)
		return Outline{
			RRect:  rendering.RRectFromRectAndRadius(square, rendering.CircularRadius(d/2)),
			Radius: d / 2,
		}
	case ShapeCapsule:
		rad := math.Min(w, h) / 2
		return Outline{
			RRect:  rendering.RRectFromRectAndRadius(r, rendering.CircularRadius(rad)),
			Radius: rad,
		}
	default: // ShapeRoundedRect
		rad := math.Min(s.CornerRadius, math.Min(w/2, h/2))
		if rad < 0 {
			rad = 0
		}
		return Outline{
			RRect:  rendering.RRectFromRectAndRadius(r, rendering.CircularRadius(rad)),
			Radius: rad,
		}
	}
}
