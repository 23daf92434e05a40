// Package testing provides display-list serialization and snapshot matching
// for verifying composed glass surfaces in tests.
package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/glass/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements rendering.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayerAlpha(bounds rendering.Rect, alpha float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "saveLayerAlpha",
		Params: sortedMap("bounds", serializeRect(bounds), "alpha", round2(alpha)),
	})
}

func (c *serializingCanvas) SaveLayerBlur(bounds rendering.Rect, sigmaX, sigmaY float64) {
	c.ops = append(c.ops, DisplayOp{
		Op: "saveLayerBlur",
		Params: sortedMap(
			"bounds", serializeRect(bounds),
			"sigmaX", round2(sigmaX),
			"sigmaY", round2(sigmaY),
		),
	})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipRect(rect rendering.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) ClipRRect(rrect rendering.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: sortedMap("rect", serializeRect(rrect.Rect), "radius", serializeRadius(rrect)),
	})
}

func (c *serializingCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawCircle(center rendering.Offset, radius float64, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	params := sortedMap(
		"commands", len(path.Commands),
		"style", paint.Style.String(),
		"blend", paint.BlendMode.String(),
	)
	if paint.Gradient != nil {
		params["gradient"] = serializeGradient(paint.Gradient)
	} else {
		params["color"] = serializeColor(paint.Color)
	}
	if paint.Style == rendering.PaintStyleStroke {
		params["strokeWidth"] = round2(paint.StrokeWidth)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawRRectShadow(rrect rendering.RRect, shadow rendering.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRectShadow",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"color", serializeColor(shadow.Color),
			"blur", round2(shadow.BlurRadius),
			"dy", round2(shadow.Offset.Y),
		),
	})
}

func (c *serializingCanvas) Size() rendering.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through a serializing canvas.
func SerializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr rendering.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeGradient(g *rendering.Gradient) map[string]any {
	params := sortedMap("type", g.Type.String())
	stops := make([]map[string]any, 0, len(g.Stops()))
	for _, stop := range g.Stops() {
		stops = append(stops, sortedMap(
			"position", round4(stop.Position),
			"color", serializeColor(stop.Color),
		))
	}
	params["stops"] = stops
	if g.Type == rendering.GradientTypeSweep {
		params["cx"] = round2(g.Sweep.Center.X)
		params["cy"] = round2(g.Sweep.Center.Y)
		params["startAngle"] = round4(g.Sweep.StartAngle)
	}
	return params
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// round4 rounds a float64 to 4 decimal places; gradient stop positions need
// more precision than pixel coordinates.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// sortedMap creates a map from alternating key-value pairs.
// Keys are sorted alphabetically in the resulting map (Go maps iterate
// in random order, but JSON marshaling sorts keys via our snapshot encoder).
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
