// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Lerp blends from c toward to by t (0 = c, 1 = to). All four channels are interpolated.
//
// Parameters:
//   - to: the target color
//   - t: blend factor
//
// Returns:
//   - Color: the blended color
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// Array returns the color as a vec4-compatible array for GPU upload.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Transparent is the zero color: no tint.
var Transparent = Color{}
