// Package raster renders display lists to an image with a pure software
// pipeline: paths are flattened and filled through x/image/vector, and blur
// effects (drop shadows, frosted backdrops) use bild's gaussian blur.
package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/go-drift/glass/pkg/rendering"
)

type layerKind int

const (
	layerNone layerKind = iota
	layerAlpha
	layerBlur
)

type state struct {
	tx, ty float64
	clip   *image.Alpha // nil means unclipped

	// Layer bookkeeping for the state opened by SaveLayer*.
	layer       layerKind
	layerAlpha  float64
	layerBounds rendering.Rect
	layerSigma  float64
	parent      *image.RGBA
}

// Canvas is a software implementation of rendering.Canvas drawing into an
// *image.RGBA. The zero value is not usable; construct with NewCanvas.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int
	cur    state
	stack  []state
}

var _ rendering.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas with a transparent backing image of the given
// pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Image returns the backing image. The pixels are alpha-premultiplied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() rendering.Size {
	return rendering.Size{Width: float64(c.width), Height: float64(c.height)}
}

// Save pushes the current transform and clip state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
	c.cur.layer = layerNone
	c.cur.parent = nil
}

// SaveLayerAlpha redirects drawing to a fresh transparent layer that is
// composited with the given opacity on Restore.
func (c *Canvas) SaveLayerAlpha(bounds rendering.Rect, alpha float64) {
	c.stack = append(c.stack, c.cur)
	c.cur.layer = layerAlpha
	c.cur.layerAlpha = clamp01(alpha)
	c.cur.layerBounds = bounds
	c.cur.parent = c.img
	c.img = image.NewRGBA(image.Rect(0, 0, c.width, c.height))
}

// SaveLayerBlur records a backdrop blur; on Restore the pixels already
// drawn within bounds are blurred in place.
func (c *Canvas) SaveLayerBlur(bounds rendering.Rect, sigmaX, sigmaY float64) {
	c.stack = append(c.stack, c.cur)
	c.cur.layer = layerBlur
	c.cur.layerBounds = bounds
	// bild blurs isotropically; average the two sigmas.
	c.cur.layerSigma = (sigmaX + sigmaY) / 2
	c.cur.parent = nil
}

// Restore pops the most recent state, applying any pending layer effect.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	finished := c.cur
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	switch finished.layer {
	case layerAlpha:
		layerImg := c.img
		c.img = finished.parent
		c.compositeLayer(layerImg, finished.layerAlpha)
	case layerBlur:
		c.applyBackdropBlur(finished)
	}
}

// Translate moves the origin by the given offset.
func (c *Canvas) Translate(dx, dy float64) {
	c.cur.tx += dx
	c.cur.ty += dy
}

// ClipRect restricts future drawing to the given rectangle.
func (c *Canvas) ClipRect(rect rendering.Rect) {
	path := rendering.NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.clipPath(path)
}

// ClipRRect restricts future drawing to the given rounded rectangle.
func (c *Canvas) ClipRRect(rrect rendering.RRect) {
	c.clipPath(rendering.RRectPath(rrect))
}

func (c *Canvas) clipPath(path *rendering.Path) {
	mask := rasterizeRings(c.translateRings(flattenPath(path)), c.width, c.height)
	if c.cur.clip == nil {
		c.cur.clip = mask
		return
	}
	combined := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	for i := range combined.Pix {
		combined.Pix[i] = uint8(uint32(mask.Pix[i]) * uint32(c.cur.clip.Pix[i]) / 255)
	}
	c.cur.clip = combined
}

// Clear fills the entire canvas with the given color, ignoring the clip.
func (c *Canvas) Clear(color rendering.Color) {
	r, g, b, a := premultiply(color, 1)
	for i := 0; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i] = uint8(r)
		c.img.Pix[i+1] = uint8(g)
		c.img.Pix[i+2] = uint8(b)
		c.img.Pix[i+3] = uint8(a)
	}
}

// DrawRect draws a rectangle with the provided paint.
func (c *Canvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	if rect.IsEmpty() {
		return
	}
	c.DrawRRect(rendering.RRectFromRectAndRadius(rect, rendering.Radius{}), paint)
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *Canvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	if rrect.IsEmpty() {
		return
	}
	c.DrawPath(rendering.RRectPath(rrect), paint)
}

// DrawCircle draws a circle with the provided paint.
func (c *Canvas) DrawCircle(center rendering.Offset, radius float64, paint rendering.Paint) {
	c.DrawPath(rendering.CirclePath(center, radius), paint)
}

// DrawPath draws a path with the provided paint.
func (c *Canvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	rings := c.translateRings(flattenPath(path))
	if paint.Style == rendering.PaintStyleStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		rings = strokeRings(rings, width)
	}
	bounds := ringsBounds(rings, c.img.Bounds())
	if bounds.Empty() {
		return
	}
	mask := rasterizeRings(rings, c.width, c.height)
	shadeMask(c.img, mask, c.cur.clip, bounds, paint, c.cur.tx, c.cur.ty)
}

// DrawRRectShadow draws a blurred drop shadow behind a rounded rectangle.
func (c *Canvas) DrawRRectShadow(rrect rendering.RRect, shadow rendering.BoxShadow) {
	if rrect.IsEmpty() || shadow.Color.IsTransparent() {
		return
	}
	offset := rrect.Rect.Translate(shadow.Offset.X, shadow.Offset.Y)
	shifted := rendering.RRectFromRectAndRadius(offset, rrect.TopLeft)
	rings := c.translateRings(flattenPath(rendering.RRectPath(shifted)))
	mask := rasterizeRings(rings, c.width, c.height)

	sr, sg, sb, sa := premultiply(shadow.Color, 1)
	shadowImg := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, cov := range mask.Pix {
		if cov == 0 {
			continue
		}
		shadowImg.Pix[i*4] = uint8(sr * uint32(cov) / 255)
		shadowImg.Pix[i*4+1] = uint8(sg * uint32(cov) / 255)
		shadowImg.Pix[i*4+2] = uint8(sb * uint32(cov) / 255)
		shadowImg.Pix[i*4+3] = uint8(sa * uint32(cov) / 255)
	}
	if sigma := shadow.Sigma(); sigma > 0 {
		shadowImg = blur.Gaussian(shadowImg, sigma*2)
	}
	c.compositeImage(shadowImg)
}

// compositeLayer blends a finished alpha layer over the canvas.
func (c *Canvas) compositeLayer(layerImg *image.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	scale := uint32(alpha*255 + 0.5)
	for i := 0; i < len(c.img.Pix); i += 4 {
		sa := uint32(layerImg.Pix[i+3]) * scale / 255
		if sa == 0 {
			continue
		}
		sr := uint32(layerImg.Pix[i]) * scale / 255
		sg := uint32(layerImg.Pix[i+1]) * scale / 255
		sb := uint32(layerImg.Pix[i+2]) * scale / 255
		inv := 255 - sa
		c.img.Pix[i] = clampByte(sr + uint32(c.img.Pix[i])*inv/255)
		c.img.Pix[i+1] = clampByte(sg + uint32(c.img.Pix[i+1])*inv/255)
		c.img.Pix[i+2] = clampByte(sb + uint32(c.img.Pix[i+2])*inv/255)
		c.img.Pix[i+3] = clampByte(sa + uint32(c.img.Pix[i+3])*inv/255)
	}
}

// compositeImage src-over blends a full-canvas premultiplied image through
// the current clip.
func (c *Canvas) compositeImage(src *image.RGBA) {
	for i := 0; i < len(c.img.Pix); i += 4 {
		sa := uint32(src.Pix[i+3])
		if sa == 0 {
			continue
		}
		sr := uint32(src.Pix[i])
		sg := uint32(src.Pix[i+1])
		sb := uint32(src.Pix[i+2])
		if c.cur.clip != nil {
			cov := uint32(c.cur.clip.Pix[i/4])
			if cov == 0 {
				continue
			}
			sr = sr * cov / 255
			sg = sg * cov / 255
			sb = sb * cov / 255
			sa = sa * cov / 255
		}
		inv := 255 - sa
		c.img.Pix[i] = clampByte(sr + uint32(c.img.Pix[i])*inv/255)
		c.img.Pix[i+1] = clampByte(sg + uint32(c.img.Pix[i+1])*inv/255)
		c.img.Pix[i+2] = clampByte(sb + uint32(c.img.Pix[i+2])*inv/255)
		c.img.Pix[i+3] = clampByte(sa + uint32(c.img.Pix[i+3])*inv/255)
	}
}

// applyBackdropBlur blurs the already-drawn pixels within the layer bounds,
// writing the result back through the current clip.
func (c *Canvas) applyBackdropBlur(s state) {
	if s.layerSigma <= 0 {
		return
	}
	bounds := s.layerBounds.Translate(s.tx, s.ty)
	region := image.Rect(
		int(bounds.Left), int(bounds.Top),
		int(bounds.Right)+1, int(bounds.Bottom)+1,
	).Intersect(c.img.Bounds())
	if region.Empty() {
		return
	}
	blurred := blur.Gaussian(c.img, s.layerSigma*2)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			cov := uint32(255)
			if s.clip != nil {
				cov = uint32(s.clip.AlphaAt(x, y).A)
				if cov == 0 {
					continue
				}
			}
			di := c.img.PixOffset(x, y)
			for k := 0; k < 4; k++ {
				b := uint32(blurred.Pix[di+k])
				o := uint32(c.img.Pix[di+k])
				c.img.Pix[di+k] = uint8((b*cov + o*(255-cov)) / 255)
			}
		}
	}
}

func (c *Canvas) translateRings(rings [][]point) [][]point {
	if c.cur.tx == 0 && c.cur.ty == 0 {
		return rings
	}
	out := make([][]point, len(rings))
	for i, ring := range rings {
		moved := make([]point, len(ring))
		for j, p := range ring {
			moved[j] = point{x: p.x + c.cur.tx, y: p.y + c.cur.ty}
		}
		out[i] = moved
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
