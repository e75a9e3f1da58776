package shade

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color represents a shading result with red, green, blue, and alpha
// components. Components are nominally in [0, 1] but the core does not
// clamp them except where a lighting model explicitly does; the
// directional light in particular can produce negative components.
type Color struct {
	R, G, B, A float32
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Vec4 returns the color as an (r, g, b, a) vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// colorFromVec4 reinterprets an (r, g, b, a) vector as a color.
func colorFromVec4(v mgl32.Vec4) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Color converts to the standard color.Color interface, clamping each
// component into displayable range.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// RGBA() returns alpha-premultiplied components; undo that so the
	// result round-trips through the shading math unpremultiplied.
	af := float32(a) / 65535
	return Color{
		R: float32(r) / 65535 / af,
		G: float32(g) / 65535 / af,
		B: float32(b) / 65535 / af,
		A: af,
	}
}

// clamp255 clamps a float to [0, 255].
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
