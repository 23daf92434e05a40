// Package theme provides the ambient light/dark color configuration the
// glass renderer derives its colors from.
package theme

import "fmt"

// Brightness indicates whether the ambient color scheme is light or dark.
type Brightness int

const (
	// BrightnessLight is the light color scheme.
	BrightnessLight Brightness = iota
	// BrightnessDark is the dark color scheme.
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}
