// Package glass renders a frosted glass surface: a translucent material
// fill, an optional color tint, a directional highlight, a gradient stroke,
// and a soft drop shadow, over one of three outline shapes (rounded
// rectangle, circle, capsule).
//
// The package is a pure geometry and layering engine. Compose produces a
// [rendering.DisplayList] that can be replayed onto any canvas backend;
// nothing here retains state between calls, and identical inputs always
// produce identical output.
package glass
