package shade

// Fragment is the fragment-stage entry point: it computes the final color
// for one covered pixel from the interpolated varyings and the uniform
// block. Like Vertex it is a pure function and never mutates u.
//
// Interpolation denormalizes unit vectors, so every direction vector is
// re-normalized here before use. That step is mandatory, not an
// optimization guard.
func (p Pipeline) Fragment(v Varyings, u *Uniforms) Color {
	switch p.Light {
	case LightVertexColor:
		return colorFromVec4(v.Color)

	case LightDirectional:
		n := safeNormalize(v.Normal)
		// Intensity is deliberately left unclamped: a surface facing
		// away from the light yields a negative intensity and therefore
		// negative color components, matching the source behavior this
		// model reproduces. The point-light model clamps; this one does
		// not. See the directional notes in DESIGN.md before changing.
		intensity := n.Dot(u.LightDirection.Mul(-1))
		return Color{
			R: u.LightColor[0] * intensity,
			G: u.LightColor[1] * intensity,
			B: u.LightColor[2] * intensity,
			A: u.LightColor[3],
		}

	case LightPoint:
		n := safeNormalize(v.Normal)
		toLight := safeNormalize(v.SurfaceToLight)
		intensity := clamp01(n.Dot(toLight))
		return Color{
			R: u.LightColor[0] * intensity,
			G: u.LightColor[1] * intensity,
			B: u.LightColor[2] * intensity,
			A: u.LightColor[3],
		}

	default: // LightFlat
		return colorFromVec4(u.Color)
	}
}
