// Package config loads YAML scene descriptions for the glass CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/glass/pkg/errors"
	"github.com/go-drift/glass/pkg/glass"
	"github.com/go-drift/glass/pkg/rendering"
	"github.com/go-drift/glass/pkg/theme"
)

// SceneConfig is the YAML shape of a renderable scene.
type SceneConfig struct {
	Size       SizeConfig    `yaml:"size"`
	Brightness string        `yaml:"brightness,omitempty"`
	Background string        `yaml:"background,omitempty"`
	Panels     []PanelConfig `yaml:"panels"`
}

// SizeConfig is a pixel size in YAML.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RectConfig is a rectangle in YAML.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PanelConfig describes one glass panel.
type PanelConfig struct {
	Shape        string     `yaml:"shape"`
	CornerRadius float64    `yaml:"corner_radius,omitempty"`
	Rect         RectConfig `yaml:"rect"`
	Tint         string     `yaml:"tint,omitempty"`
	Opacity      *float64   `yaml:"opacity,omitempty"`
	LightAngle   string     `yaml:"light_angle,omitempty"`
	Hover        bool       `yaml:"hover,omitempty"`
}

// Scene is a fully resolved scene ready to render.
type Scene struct {
	Width      int
	Height     int
	Brightness theme.Brightness
	Background rendering.Color
	Panels     []Panel
}

// Panel is a resolved glass panel.
type Panel struct {
	Shape      glass.Shape
	Rect       rendering.Rect
	Appearance glass.Appearance
	LightAngle glass.LightAngle
	Hover      bool
}

// LoadScene reads and resolves a scene YAML file. Unknown fields are
// rejected so typos surface instead of silently rendering defaults.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewPath("config.LoadScene", errors.KindIO, path, err)
	}

	var cfg SceneConfig
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.NewPath("config.LoadScene", errors.KindConfig, path, err)
	}

	scene, err := Resolve(&cfg)
	if err != nil {
		return nil, errors.NewPath("config.LoadScene", errors.KindConfig, path, err)
	}
	return scene, nil
}

// Resolve validates a parsed config and resolves names to renderer types.
func Resolve(cfg *SceneConfig) (*Scene, error) {
	if cfg.Size.Width <= 0 || cfg.Size.Height <= 0 {
		return nil, fmt.Errorf("scene size must be positive, got %dx%d", cfg.Size.Width, cfg.Size.Height)
	}

	brightness, err := parseBrightness(cfg.Brightness)
	if err != nil {
		return nil, err
	}

	background := rendering.ColorTransparent
	if cfg.Background != "" {
		background, err = rendering.ParseColor(cfg.Background)
		if err != nil {
			return nil, err
		}
	}

	scene := &Scene{
		Width:      cfg.Size.Width,
		Height:     cfg.Size.Height,
		Brightness: brightness,
		Background: background,
	}

	for i, p := range cfg.Panels {
		panel, err := resolvePanel(p, brightness)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		scene.Panels = append(scene.Panels, panel)
	}
	return scene, nil
}

func resolvePanel(p PanelConfig, brightness theme.Brightness) (Panel, error) {
	shape, err := parseShape(p.Shape, p.CornerRadius)
	if err != nil {
		return Panel{}, err
	}

	angle, err := parseLightAngle(p.LightAngle)
	if err != nil {
		return Panel{}, err
	}

	tint := rendering.ColorTransparent
	if p.Tint != "" {
		tint, err = rendering.ParseColor(p.Tint)
		if err != nil {
			return Panel{}, err
		}
	}

	opacity := 1.0
	if p.Opacity != nil {
		opacity = *p.Opacity
		if opacity < 0 || opacity > 1 {
			return Panel{}, fmt.Errorf("opacity %v out of range [0, 1]", opacity)
		}
	}

	return Panel{
		Shape: shape,
		Rect:  rendering.RectFromLTWH(p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height),
		Appearance: glass.Appearance{
			Tint:       tint,
			Opacity:    opacity,
			Brightness: brightness,
		},
		LightAngle: angle,
		Hover:      p.Hover,
	}, nil
}

func parseBrightness(s string) (theme.Brightness, error) {
	switch s {
	case "", "light":
		return theme.BrightnessLight, nil
	case "dark":
		return theme.BrightnessDark, nil
	default:
		return 0, fmt.Errorf("unknown brightness %q (want light or dark)", s)
	}
}

func parseShape(s string, cornerRadius float64) (glass.Shape, error) {
	switch s {
	case "", "rounded_rect":
		if cornerRadius < 0 {
			return glass.Shape{}, fmt.Errorf("corner_radius must be non-negative, got %v", cornerRadius)
		}
		return glass.RoundedRect(cornerRadius), nil
	case "circle":
		return glass.Circle(), nil
	case "capsule":
		return glass.Capsule(), nil
	default:
		return glass.Shape{}, fmt.Errorf("unknown shape %q (want rounded_rect, circle, or capsule)", s)
	}
}

func parseLightAngle(s string) (glass.LightAngle, error) {
	switch s {
	case "", "top_leading":
		return glass.LightAngleTopLeading, nil
	case "top":
		return glass.LightAngleTop, nil
	case "top_trailing":
		return glass.LightAngleTopTrailing, nil
	case "trailing":
		return glass.LightAngleTrailing, nil
	case "bottom_trailing":
		return glass.LightAngleBottomTrailing, nil
	case "bottom":
		return glass.LightAngleBottom, nil
	case "bottom_leading":
		return glass.LightAngleBottomLeading, nil
	case "leading":
		return glass.LightAngleLeading, nil
	case "all":
		return glass.LightAngleAll, nil
	case "none":
		return glass.LightAngleNone, nil
	default:
		return 0, fmt.Errorf("unknown light_angle %q", s)
	}
}
