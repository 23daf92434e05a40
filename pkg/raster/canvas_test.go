package raster

import (
	"image/color"
	"testing"

	"github.com/go-drift/glass/pkg/rendering"
)

func fillPaint(c rendering.Color) rendering.Paint {
	paint := rendering.DefaultPaint()
	paint.Color = c
	return paint
}

func TestDrawRectFillsInterior(t *testing.T) {
	canvas := NewCanvas(20, 20)
	canvas.DrawRect(rendering.RectFromLTWH(5, 5, 10, 10), fillPaint(rendering.RGB(255, 0, 0)))

	img := canvas.Image()
	if got := img.RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("interior pixel = %+v, want opaque red", got)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{}) {
		t.Errorf("exterior pixel = %+v, want transparent", got)
	}
}

func TestClipRectRestrictsDrawing(t *testing.T) {
	canvas := NewCanvas(20, 20)
	canvas.Save()
	canvas.ClipRect(rendering.RectFromLTWH(0, 0, 10, 20))
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 20, 20), fillPaint(rendering.RGB(0, 255, 0)))

	img := canvas.Image()
	if got := img.RGBAAt(5, 10); got.G == 0 {
		t.Errorf("pixel inside clip = %+v, want green", got)
	}
	if got := img.RGBAAt(15, 10); got != (color.RGBA{}) {
		t.Errorf("pixel outside clip = %+v, want transparent", got)
	}

	// After Restore the clip no longer applies.
	canvas.Restore()
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 20, 20), fillPaint(rendering.RGB(0, 255, 0)))
	if got := img.RGBAAt(15, 10); got.G == 0 {
		t.Errorf("pixel after restore = %+v, want green", got)
	}
}

func TestClipRRectRoundsCorners(t *testing.T) {
	canvas := NewCanvas(40, 40)
	rrect := rendering.RRectFromRectAndRadius(
		rendering.RectFromLTWH(0, 0, 40, 40), rendering.CircularRadius(16))
	canvas.ClipRRect(rrect)
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 40, 40), fillPaint(rendering.RGB(255, 0, 0)))

	img := canvas.Image()
	if got := img.RGBAAt(20, 20); got.R == 0 {
		t.Errorf("center pixel = %+v, want red", got)
	}
	// The sharp corner lies well outside the rounded boundary.
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("corner pixel = %+v, want clipped away", got)
	}
}

func TestStrokeLeavesInteriorEmpty(t *testing.T) {
	canvas := NewCanvas(20, 20)
	paint := fillPaint(rendering.RGB(0, 0, 255))
	paint.Style = rendering.PaintStyleStroke
	paint.StrokeWidth = 2
	canvas.DrawPath(rendering.RRectPath(rendering.RRectFromRectAndRadius(
		rendering.RectFromLTWH(5, 5, 10, 10), rendering.CircularRadius(0))), paint)

	img := canvas.Image()
	if got := img.RGBAAt(5, 10); got.A == 0 {
		t.Errorf("edge pixel = %+v, want stroked", got)
	}
	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("interior pixel = %+v, want untouched", got)
	}
	if got := img.RGBAAt(2, 10); got.A != 0 {
		t.Errorf("pixel outside stroke = %+v, want untouched", got)
	}
}

func TestPlusBlendAccumulates(t *testing.T) {
	canvas := NewCanvas(20, 20)
	paint := fillPaint(rendering.RGBA(100, 0, 0, 100))
	paint.BlendMode = rendering.BlendModePlus

	rect := rendering.RectFromLTWH(5, 5, 10, 10)
	canvas.DrawRect(rect, paint)
	canvas.DrawRect(rect, paint)

	// Each pass adds premultiplied red = round(100/255 * 100/255 * 255) = 39
	// and alpha 100.
	img := canvas.Image()
	want := color.RGBA{R: 78, A: 200}
	if got := img.RGBAAt(10, 10); got != want {
		t.Errorf("pixel = %+v, want %+v", got, want)
	}
}

func TestClearIgnoresClip(t *testing.T) {
	canvas := NewCanvas(10, 10)
	canvas.ClipRect(rendering.RectFromLTWH(0, 0, 2, 2))
	canvas.Clear(rendering.RGB(0, 0, 255))

	img := canvas.Image()
	if got := img.RGBAAt(8, 8); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel outside clip = %+v, want blue", got)
	}
}

func TestSaveLayerAlphaScalesLayer(t *testing.T) {
	canvas := NewCanvas(20, 20)
	canvas.SaveLayerAlpha(rendering.RectFromLTWH(0, 0, 20, 20), 0.5)
	canvas.DrawRect(rendering.RectFromLTWH(5, 5, 10, 10), fillPaint(rendering.ColorWhite))
	canvas.Restore()

	img := canvas.Image()
	got := img.RGBAAt(10, 10)
	if got.A < 120 || got.A > 136 {
		t.Errorf("alpha = %d, want about half of 255", got.A)
	}
	if got.R != got.A || got.G != got.A || got.B != got.A {
		t.Errorf("pixel = %+v, want gray at the layer alpha", got)
	}
}

func TestTranslateShiftsDrawing(t *testing.T) {
	canvas := NewCanvas(20, 20)
	canvas.Save()
	canvas.Translate(5, 5)
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 5, 5), fillPaint(rendering.RGB(255, 0, 0)))
	canvas.Restore()

	img := canvas.Image()
	if got := img.RGBAAt(7, 7); got.R == 0 {
		t.Errorf("translated pixel = %+v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("origin pixel = %+v, want untouched", got)
	}

	// The translation does not survive the restore.
	canvas.DrawRect(rendering.RectFromLTWH(0, 0, 5, 5), fillPaint(rendering.RGB(255, 0, 0)))
	if got := img.RGBAAt(2, 2); got.R == 0 {
		t.Errorf("pixel after restore = %+v, want red at origin", got)
	}
}

func TestDrawRRectShadowOffsetAndSpread(t *testing.T) {
	canvas := NewCanvas(40, 40)
	rrect := rendering.RRectFromRectAndRadius(
		rendering.RectFromLTWH(10, 10, 10, 10), rendering.CircularRadius(2))
	canvas.DrawRRectShadow(rrect, rendering.BoxShadow{
		Color:      rendering.RGBA(0, 0, 0, 0xFF),
		Offset:     rendering.Offset{Y: 6},
		BlurRadius: 4,
	})

	img := canvas.Image()
	// The shadow body sits below the rect by the offset.
	if got := img.RGBAAt(15, 21); got.A == 0 {
		t.Errorf("shadow pixel = %+v, want covered", got)
	}
	// Far above the shifted rect nothing is painted.
	if got := img.RGBAAt(15, 5); got.A != 0 {
		t.Errorf("pixel above shadow = %+v, want transparent", got)
	}
}

func TestDrawRRectShadowTransparentColorNoop(t *testing.T) {
	canvas := NewCanvas(20, 20)
	canvas.DrawRRectShadow(
		rendering.RRectFromRectAndRadius(rendering.RectFromLTWH(5, 5, 10, 10), rendering.CircularRadius(2)),
		rendering.BoxShadow{Color: rendering.ColorTransparent, BlurRadius: 4},
	)
	img := canvas.Image()
	for i := range img.Pix {
		if img.Pix[i] != 0 {
			t.Fatal("transparent shadow painted pixels")
		}
	}
}

func TestGradientFillEvaluatedInUserSpace(t *testing.T) {
	gradient := rendering.NewLinearGradient(
		rendering.Offset{X: 5, Y: 10}, rendering.Offset{X: 15, Y: 10},
		[]rendering.GradientStop{
			{Position: 0, Color: rendering.RGB(0, 0, 0)},
			{Position: 1, Color: rendering.ColorWhite},
		})
	paint := rendering.DefaultPaint()
	paint.Gradient = gradient

	canvas := NewCanvas(20, 20)
	canvas.DrawRect(rendering.RectFromLTWH(5, 5, 10, 10), paint)

	img := canvas.Image()
	left := img.RGBAAt(6, 10)
	right := img.RGBAAt(14, 10)
	if left.R >= right.R {
		t.Errorf("left %d, right %d: gradient not increasing left to right", left.R, right.R)
	}
	if left.A != 255 || right.A != 255 {
		t.Errorf("gradient pixels not opaque: left %+v right %+v", left, right)
	}
}

func TestNewCanvasClampsNegativeSize(t *testing.T) {
	canvas := NewCanvas(-5, 10)
	if size := canvas.Size(); size.Width != 0 || size.Height != 10 {
		t.Errorf("Size() = %+v, want 0x10", size)
	}
}
