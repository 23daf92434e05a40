package theme

import (
	"testing"

	"github.com/go-drift/glass/pkg/rendering"
)

func TestGlassSchemeFor(t *testing.T) {
	light := GlassSchemeFor(BrightnessLight)
	dark := GlassSchemeFor(BrightnessDark)

	if light.Material != rendering.RGBA(255, 255, 255, 0x8C) {
		t.Errorf("light material = %v", light.Material)
	}
	if dark.Material != rendering.RGBA(30, 30, 30, 0x8C) {
		t.Errorf("dark material = %v", dark.Material)
	}

	// Both schemes share the same translucency for the material layer and a
	// neutral white highlight.
	if light.Material.Alpha() != dark.Material.Alpha() {
		t.Errorf("material alphas differ: %d vs %d", light.Material.Alpha(), dark.Material.Alpha())
	}
	if light.Highlight != rendering.ColorWhite || dark.Highlight != rendering.ColorWhite {
		t.Error("highlight is not neutral white in both schemes")
	}

	// Dark mode pulls back both the shadow and the hover wash.
	if dark.Shadow.Alpha() >= light.Shadow.Alpha() {
		t.Errorf("dark shadow alpha %d not below light %d", dark.Shadow.Alpha(), light.Shadow.Alpha())
	}
	if dark.Hover.Alpha() >= light.Hover.Alpha() {
		t.Errorf("dark hover alpha %d not below light %d", dark.Hover.Alpha(), light.Hover.Alpha())
	}
}

func TestBrightnessString(t *testing.T) {
	tests := []struct {
		brightness Brightness
		want       string
	}{
		{BrightnessLight, "light"},
		{BrightnessDark, "dark"},
	}
	for _, tt := range tests {
		if got := tt.brightness.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBrightnessZeroValueIsLight(t *testing.T) {
	var b Brightness
	if b != BrightnessLight {
		t.Errorf("zero value = %v, want light", b)
	}
}
