package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/glass/pkg/errors"
	"github.com/go-drift/glass/pkg/glass"
	"github.com/go-drift/glass/pkg/rendering"
	"github.com/go-drift/glass/pkg/theme"
)

const sampleScene = `
size:
  width: 400
  height: 300
brightness: dark
background: "#202020"
panels:
  - shape: rounded_rect
    corner_radius: 16
    rect: {x: 20, y: 20, width: 200, height: 100}
    tint: "#2060C0"
    opacity: 0.8
    light_angle: top
    hover: true
  - shape: circle
    rect: {x: 260, y: 40, width: 80, height: 80}
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene(writeScene(t, sampleScene))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	if scene.Width != 400 || scene.Height != 300 {
		t.Errorf("size = %dx%d, want 400x300", scene.Width, scene.Height)
	}
	if scene.Brightness != theme.BrightnessDark {
		t.Errorf("brightness = %v, want dark", scene.Brightness)
	}
	if scene.Background != rendering.RGB(0x20, 0x20, 0x20) {
		t.Errorf("background = %v", scene.Background)
	}
	if len(scene.Panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(scene.Panels))
	}

	first := scene.Panels[0]
	if first.Shape.Kind != glass.ShapeRoundedRect || first.Shape.CornerRadius != 16 {
		t.Errorf("shape = %+v", first.Shape)
	}
	if first.Rect != rendering.RectFromLTWH(20, 20, 200, 100) {
		t.Errorf("rect = %+v", first.Rect)
	}
	if first.Appearance.Tint != rendering.RGB(0x20, 0x60, 0xC0) {
		t.Errorf("tint = %v", first.Appearance.Tint)
	}
	if first.Appearance.Opacity != 0.8 {
		t.Errorf("opacity = %v", first.Appearance.Opacity)
	}
	if first.Appearance.Brightness != theme.BrightnessDark {
		t.Errorf("appearance brightness = %v, want scene brightness", first.Appearance.Brightness)
	}
	if first.LightAngle != glass.LightAngleTop {
		t.Errorf("light angle = %v", first.LightAngle)
	}
	if !first.Hover {
		t.Error("hover not set")
	}

	second := scene.Panels[1]
	if second.Shape.Kind != glass.ShapeCircle {
		t.Errorf("shape = %+v", second.Shape)
	}
	if second.Appearance.Opacity != 1 {
		t.Errorf("default opacity = %v, want 1", second.Appearance.Opacity)
	}
	if second.LightAngle != glass.LightAngleTopLeading {
		t.Errorf("default light angle = %v", second.LightAngle)
	}
}

func TestLoadSceneUnknownFieldRejected(t *testing.T) {
	content := `
size:
  width: 100
  height: 100
panles: []
`
	_, err := LoadScene(writeScene(t, content))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
	var gerr *errors.GlassError
	if !stderrors.As(err, &gerr) {
		t.Fatalf("error %T, want *errors.GlassError", err)
	}
	if gerr.Kind != errors.KindConfig {
		t.Errorf("kind = %v, want config", gerr.Kind)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing file accepted")
	}
	var gerr *errors.GlassError
	if !stderrors.As(err, &gerr) {
		t.Fatalf("error %T, want *errors.GlassError", err)
	}
	if gerr.Kind != errors.KindIO {
		t.Errorf("kind = %v, want io", gerr.Kind)
	}
}

func TestResolveErrors(t *testing.T) {
	valid := func() *SceneConfig {
		return &SceneConfig{
			Size:   SizeConfig{Width: 100, Height: 100},
			Panels: []PanelConfig{{Shape: "circle", Rect: RectConfig{Width: 50, Height: 50}}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SceneConfig)
		wantErr string
	}{
		{"zero width", func(c *SceneConfig) { c.Size.Width = 0 }, "size must be positive"},
		{"bad brightness", func(c *SceneConfig) { c.Brightness = "dim" }, "unknown brightness"},
		{"bad background", func(c *SceneConfig) { c.Background = "blue" }, "invalid color"},
		{"bad shape", func(c *SceneConfig) { c.Panels[0].Shape = "hexagon" }, "unknown shape"},
		{"negative radius", func(c *SceneConfig) {
			c.Panels[0].Shape = "rounded_rect"
			c.Panels[0].CornerRadius = -1
		}, "corner_radius"},
		{"bad light angle", func(c *SceneConfig) { c.Panels[0].LightAngle = "sideways" }, "unknown light_angle"},
		{"bad tint", func(c *SceneConfig) { c.Panels[0].Tint = "red" }, "invalid color"},
		{"opacity out of range", func(c *SceneConfig) {
			v := 1.5
			c.Panels[0].Opacity = &v
		}, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			_, err := Resolve(cfg)
			if err == nil {
				t.Fatal("invalid config accepted")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Resolve(valid()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestResolvePanelErrorNamesIndex(t *testing.T) {
	cfg := &SceneConfig{
		Size: SizeConfig{Width: 100, Height: 100},
		Panels: []PanelConfig{
			{Shape: "circle", Rect: RectConfig{Width: 50, Height: 50}},
			{Shape: "triangle"},
		},
	}
	_, err := Resolve(cfg)
	if err == nil {
		t.Fatal("invalid panel accepted")
	}
	if !strings.Contains(err.Error(), "panel 1") {
		t.Errorf("error %q does not name the failing panel", err)
	}
}
