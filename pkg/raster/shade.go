package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/go-drift/glass/pkg/rendering"
)

// rasterizeRings fills the rings into an alpha coverage mask of the canvas
// size using the non-zero winding rule.
func rasterizeRings(rings [][]point, width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if len(rings) == 0 {
		return mask
	}
	r := vector.NewRasterizer(width, height)
	for _, ring := range rings {
		r.MoveTo(float32(ring[0].x), float32(ring[0].y))
		for _, p := range ring[1:] {
			r.LineTo(float32(p.x), float32(p.y))
		}
		r.ClosePath()
	}
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// ringsBounds returns the integer pixel bounds covering the rings, clamped
// to the canvas bounds.
func ringsBounds(rings [][]point, limit image.Rectangle) image.Rectangle {
	if len(rings) == 0 {
		return image.Rectangle{}
	}
	minX, minY := rings[0][0].x, rings[0][0].y
	maxX, maxY := minX, minY
	for _, ring := range rings {
		for _, p := range ring {
			if p.x < minX {
				minX = p.x
			}
			if p.y < minY {
				minY = p.y
			}
			if p.x > maxX {
				maxX = p.x
			}
			if p.y > maxY {
				maxY = p.y
			}
		}
	}
	r := image.Rect(int(minX)-1, int(minY)-1, int(maxX)+2, int(maxY)+2)
	return r.Intersect(limit)
}

// shadeMask composites paint through the coverage mask into dst, honoring
// the clip mask (nil = unclipped). Gradient coordinates are evaluated in
// user space, so the inverse translation is applied per pixel.
func shadeMask(dst *image.RGBA, mask, clip *image.Alpha, bounds image.Rectangle, paint rendering.Paint, tx, ty float64) {
	alpha := paint.EffectiveAlpha()
	if alpha <= 0 {
		return
	}
	gradient := paint.Gradient
	if gradient != nil && !gradient.IsValid() {
		gradient = nil
	}
	var sr, sg, sb, sa uint32
	if gradient == nil {
		sr, sg, sb, sa = premultiply(paint.Color, alpha)
		if sa == 0 && paint.BlendMode != rendering.BlendModePlus {
			return
		}
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cov := uint32(mask.AlphaAt(x, y).A)
			if cov == 0 {
				continue
			}
			if clip != nil {
				cov = cov * uint32(clip.AlphaAt(x, y).A) / 255
				if cov == 0 {
					continue
				}
			}
			r, g, b, a := sr, sg, sb, sa
			if gradient != nil {
				px := float64(x) + 0.5 - tx
				py := float64(y) + 0.5 - ty
				r, g, b, a = premultiply(gradient.ColorAt(px, py), alpha)
			}
			blendPixel(dst, x, y, r*cov/255, g*cov/255, b*cov/255, a*cov/255, paint.BlendMode)
		}
	}
}

// premultiply converts a color to premultiplied 8-bit components scaled by
// an extra opacity factor.
func premultiply(c rendering.Color, opacity float64) (r, g, b, a uint32) {
	cr, cg, cb, ca := c.RGBAF()
	ca *= opacity
	return uint32(cr*ca*255 + 0.5),
		uint32(cg*ca*255 + 0.5),
		uint32(cb*ca*255 + 0.5),
		uint32(ca*255 + 0.5)
}

// blendPixel composites a premultiplied source pixel into dst.
func blendPixel(dst *image.RGBA, x, y int, sr, sg, sb, sa uint32, mode rendering.BlendMode) {
	i := dst.PixOffset(x, y)
	dr := uint32(dst.Pix[i])
	dg := uint32(dst.Pix[i+1])
	db := uint32(dst.Pix[i+2])
	da := uint32(dst.Pix[i+3])

	switch mode {
	case rendering.BlendModePlus:
		dst.Pix[i] = clampByte(dr + sr)
		dst.Pix[i+1] = clampByte(dg + sg)
		dst.Pix[i+2] = clampByte(db + sb)
		dst.Pix[i+3] = clampByte(da + sa)
	default: // src-over
		inv := 255 - sa
		dst.Pix[i] = clampByte(sr + dr*inv/255)
		dst.Pix[i+1] = clampByte(sg + dg*inv/255)
		dst.Pix[i+2] = clampByte(sb + db*inv/255)
		dst.Pix[i+3] = clampByte(sa + da*inv/255)
	}
}

func clampByte(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
