package glass

import (
	"fmt"
	"math"
)

// LightAngle selects the simulated direction of the incoming highlight.
//
// The zero value is LightAngleTopLeading, which is also the fallback for
// any unrecognized value, so output is deterministic for every input.
type LightAngle int

const (
	// LightAngleTopLeading lights the surface from the upper left (default).
	LightAngleTopLeading LightAngle = iota
	// LightAngleTop lights the surface from above.
	LightAngleTop
	// LightAngleTopTrailing lights the surface from the upper right.
	LightAngleTopTrailing
	// LightAngleTrailing lights the surface from the right.
	LightAngleTrailing
	// LightAngleBottomTrailing lights the surface from the lower right.
	LightAngleBottomTrailing
	// LightAngleBottom lights the surface from below.
	LightAngleBottom
	// LightAngleBottomLeading lights the surface from the lower left.
	LightAngleBottomLeading
	// LightAngleLeading lights the surface from the left.
	LightAngleLeading
	// LightAngleAll suppresses the directional sweep; the stroke becomes a
	// uniform ring.
	LightAngleAll
	// LightAngleNone suppresses the highlight gradient entirely.
	LightAngleNone
)

// String returns a human-readable representation of the light angle.
func (a LightAngle) String() string {
	switch a {
	case LightAngleTopLeading:
		return "top_leading"
	case LightAngleTop:
		return "top"
	case LightAngleTopTrailing:
		return "top_trailing"
	case LightAngleTrailing:
		return "trailing"
	case LightAngleBottomTrailing:
		return "bottom_trailing"
	case LightAngleBottom:
		return "bottom"
	case LightAngleBottomLeading:
		return "bottom_leading"
	case LightAngleLeading:
		return "leading"
	case LightAngleAll:
		return "all"
	case LightAngleNone:
		return "none"
	default:
		return fmt.Sprintf("LightAngle(%d)", int(a))
	}
}

// rotation returns the fixed offset added to the gradient's start angle for
// a named direction, stepping clockwise in eighth turns from top-leading.
// Unrecognized values fall back to top-leading.
func (a LightAngle) rotation() float64 {
	switch a {
	case LightAngleTop:
		return math.Pi / 4
	case LightAngleTopTrailing:
		return math.Pi / 2
	case LightAngleTrailing:
		return 3 * math.Pi / 4
	case LightAngleBottomTrailing:
		return math.Pi
	case LightAngleBottom:
		return 5 * math.Pi / 4
	case LightAngleBottomLeading:
		return 3 * math.Pi / 2
	case LightAngleLeading:
		return 7 * math.Pi / 4
	default:
		return 0
	}
}
