package raster

import (
	"math"

	"github.com/go-drift/glass/pkg/rendering"
)

// curveSteps is the number of line segments each bezier is flattened into.
// The outlines drawn here are shallow rounded-corner arcs; a fixed
// subdivision is indistinguishable from adaptive flattening at screen scale.
const curveSteps = 24

type point struct {
	x, y float64
}

// flattenPath converts a path into closed polygonal rings. Open subpaths
// are implicitly closed, matching fill semantics.
func flattenPath(p *rendering.Path) [][]point {
	var rings [][]point
	var cur []point
	var start, pen point

	flush := func() {
		if len(cur) >= 3 {
			rings = append(rings, cur)
		}
		cur = nil
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case rendering.PathOpMoveTo:
			flush()
			pen = point{cmd.Args[0], cmd.Args[1]}
			start = pen
			cur = append(cur, pen)
		case rendering.PathOpLineTo:
			pen = point{cmd.Args[0], cmd.Args[1]}
			cur = append(cur, pen)
		case rendering.PathOpQuadTo:
			c := point{cmd.Args[0], cmd.Args[1]}
			end := point{cmd.Args[2], cmd.Args[3]}
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, point{
					x: u*u*pen.x + 2*u*t*c.x + t*t*end.x,
					y: u*u*pen.y + 2*u*t*c.y + t*t*end.y,
				})
			}
			pen = end
		case rendering.PathOpCubicTo:
			c1 := point{cmd.Args[0], cmd.Args[1]}
			c2 := point{cmd.Args[2], cmd.Args[3]}
			end := point{cmd.Args[4], cmd.Args[5]}
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				cur = append(cur, point{
					x: u*u*u*pen.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*end.x,
					y: u*u*u*pen.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*end.y,
				})
			}
			pen = end
		case rendering.PathOpClose:
			pen = start
			flush()
		}
	}
	flush()
	return rings
}

// signedArea is positive for rings wound clockwise on screen (y axis
// pointing down), the winding RRectPath produces.
func signedArea(ring []point) float64 {
	area := 0.0
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		area += p.x*q.y - q.x*p.y
	}
	return area / 2
}

// offsetRing displaces every vertex along its outward normal by delta.
// Negative delta moves inward. Vertices use the averaged normal of their
// two adjacent segments, which is exact for the smooth convex outlines
// produced by flattening rounded rects.
func offsetRing(ring []point, delta float64) []point {
	n := len(ring)
	if n < 3 {
		return nil
	}
	// Flip so the outward normal formula below is winding-independent.
	if signedArea(ring) < 0 {
		delta = -delta
	}
	out := make([]point, n)
	for i := range ring {
		prev := ring[(i-1+n)%n]
		next := ring[(i+1)%n]
		// Normals of the two adjacent segments, averaged.
		n1x, n1y := segmentNormal(prev, ring[i])
		n2x, n2y := segmentNormal(ring[i], next)
		nx := n1x + n2x
		ny := n1y + n2y
		length := math.Hypot(nx, ny)
		if length < 1e-12 {
			out[i] = ring[i]
			continue
		}
		out[i] = point{
			x: ring[i].x + delta*nx/length,
			y: ring[i].y + delta*ny/length,
		}
	}
	return out
}

// segmentNormal returns the unit normal pointing left of the segment
// direction, which is outward for clockwise rings in y-down coordinates.
func segmentNormal(a, b point) (float64, float64) {
	dx := b.x - a.x
	dy := b.y - a.y
	length := math.Hypot(dx, dy)
	if length < 1e-12 {
		return 0, 0
	}
	return dy / length, -dx / length
}

// reverseRing returns the ring with opposite winding.
func reverseRing(ring []point) []point {
	out := make([]point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// strokeRings converts closed rings into annulus rings covering a stroke of
// the given width centered on each ring. The inner ring winds opposite to
// the outer so non-zero rasterization leaves the middle empty.
func strokeRings(rings [][]point, width float64) [][]point {
	var out [][]point
	half := width / 2
	for _, ring := range rings {
		outer := offsetRing(ring, half)
		inner := offsetRing(ring, -half)
		if outer != nil {
			out = append(out, outer)
		}
		if inner != nil {
			out = append(out, reverseRing(inner))
		}
	}
	return out
}
