package shade

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the vertex-stage entry point: it maps one vertex's
// object-space attributes into a clip-space position plus the varyings
// the fragment stage consumes. It is a pure function of its inputs and
// never mutates u.
//
// The returned Position's z and w are owned by this stage; the lighting
// stage never observes or modifies them.
func (p Pipeline) Vertex(in VertexInput, u *Uniforms) Varyings {
	var out Varyings

	switch p.Transform {
	case TransformMatrix2D:
		xy := u.Matrix2D.Mul3x1(mgl32.Vec3{in.Position[0], in.Position[1], 1})
		out.Position = mgl32.Vec4{xy[0], xy[1], 0, 1}

	case TransformMatrix3D:
		out.Position = u.Matrix.Mul4x1(in.Position)

	case TransformPixelSpace:
		out.Position = pixelToClip(in.Position[0], in.Position[1], u)

	case TransformPixelSpaceMatrix:
		xy := u.Matrix2D.Mul3x1(mgl32.Vec3{in.Position[0], in.Position[1], 1})
		out.Position = pixelToClip(xy[0], xy[1], u)

	case TransformLit:
		out.Position = u.Matrix.Mul4x1(in.Position)
		if u.HasNormalMatrix {
			out.Normal = u.NormalMatrix.Mul3x1(in.Normal)
		} else {
			// A normal is a direction: w=0 so the world matrix applies
			// rotation and scale but not translation.
			n := u.Model.Mul4x1(mgl32.Vec4{in.Normal[0], in.Normal[1], in.Normal[2], 0})
			out.Normal = n.Vec3()
		}
		if p.Light == LightPoint {
			surface := u.Model.Mul4x1(in.Position).Vec3()
			out.SurfaceToLight = u.LightPosition.Sub(surface)
		}
	}

	if p.Light == LightVertexColor {
		out.Color = in.Color
	}
	return out
}

// pixelToClip converts a pixel-space position to clip space: translate,
// map to [0, 1] over the viewport, expand to [-1, 1], and flip y since
// screen y grows downward while clip y grows upward. z is fixed at 0 and
// w at 1.
func pixelToClip(x, y float32, u *Uniforms) mgl32.Vec4 {
	px := (x + u.Translation[0]) / u.Resolution[0]
	py := (y + u.Translation[1]) / u.Resolution[1]
	return mgl32.Vec4{px*2 - 1, -(py*2 - 1), 0, 1}
}
