package cmd

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/go-drift/glass/cmd/glass/internal/config"
	"github.com/go-drift/glass/pkg/errors"
	"github.com/go-drift/glass/pkg/glass"
	"github.com/go-drift/glass/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene YAML to a PNG image",
		Long: `Render reads a scene description and renders every glass panel in it
to a PNG image with the software rasterizer.

The scene file lists a canvas size, an optional brightness (light or dark),
an optional background color, and the panels to draw. See the package
documentation for the full schema.`,
		Usage: "glass render <scene.yaml> [-o output.png]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	scenePath := ""
	outPath := "out.png"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			outPath = args[i+1]
			i++
		default:
			if scenePath != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			scenePath = args[i]
		}
	}
	if scenePath == "" {
		return fmt.Errorf("missing scene file argument")
	}

	scene, err := config.LoadScene(scenePath)
	if err != nil {
		return err
	}

	canvas := raster.NewCanvas(scene.Width, scene.Height)
	if !scene.Background.IsTransparent() {
		canvas.Clear(scene.Background)
	}
	for _, panel := range scene.Panels {
		dl := glass.Compose(panel.Shape, panel.Rect, panel.Appearance, panel.LightAngle, panel.Hover)
		dl.Paint(canvas)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.NewPath("cmd.render", errors.KindIO, outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, canvas.Image()); err != nil {
		return errors.NewPath("cmd.render", errors.KindRender, outPath, err)
	}

	log.Printf("rendered %d panel(s) to %s (%dx%d)", len(scene.Panels), outPath, scene.Width, scene.Height)
	return nil
}
