package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// kappa approximates a quarter circle with a single cubic bezier.
const kappa = 0.5522847498307936

// arcQuadrant appends a cubic approximating a quarter-circle arc of radius r
// from the current point to (x, y). (cx, cy) is the arc's corner point, the
// intersection of the two tangents.
func (p *Path) arcQuadrant(cx, cy, fromX, fromY, toX, toY float64) {
	p.CubicTo(
		fromX+(cx-fromX)*kappa, fromY+(cy-fromY)*kappa,
		toX+(cx-toX)*kappa, toY+(cy-toY)*kappa,
		toX, toY,
	)
}

// RRectPath builds a closed path tracing the rounded rectangle clockwise
// from the top edge. Corner radii are clamped to half the rect dimensions
// so the path never self-intersects. An empty rrect yields an empty path.
func RRectPath(rr RRect) *Path {
	p := NewPath()
	if rr.IsEmpty() {
		return p
	}
	r := rr.Rect
	rad := math.Min(rr.UniformRadius(), r.Size().MinDimension()/2)
	if rad <= 0 {
		p.MoveTo(r.Left, r.Top)
		p.LineTo(r.Right, r.Top)
		p.LineTo(r.Right, r.Bottom)
		p.LineTo(r.Left, r.Bottom)
		p.Close()
		return p
	}
	p.MoveTo(r.Left+rad, r.Top)
	p.LineTo(r.Right-rad, r.Top)
	p.arcQuadrant(r.Right, r.Top, r.Right-rad, r.Top, r.Right, r.Top+rad)
	p.LineTo(r.Right, r.Bottom-rad)
	p.arcQuadrant(r.Right, r.Bottom, r.Right, r.Bottom-rad, r.Right-rad, r.Bottom)
	p.LineTo(r.Left+rad, r.Bottom)
	p.arcQuadrant(r.Left, r.Bottom, r.Left+rad, r.Bottom, r.Left, r.Bottom-rad)
	p.LineTo(r.Left, r.Top+rad)
	p.arcQuadrant(r.Left, r.Top, r.Left, r.Top+rad, r.Left+rad, r.Top)
	p.Close()
	return p
}

// CirclePath builds a closed path tracing a circle of the given radius.
func CirclePath(center Offset, radius float64) *Path {
	p := NewPath()
	if radius <= 0 {
		return p
	}
	rr := RRectFromRectAndRadius(
		RectFromLTWH(center.X-radius, center.Y-radius, radius*2, radius*2),
		CircularRadius(radius),
	)
	return RRectPath(rr)
}
