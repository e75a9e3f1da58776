package shade

import "fmt"

// TransformMode selects how the vertex stage maps an object-space position
// into clip space.
type TransformMode int

const (
	// TransformMatrix2D multiplies a 3x3 matrix by the homogeneous 2D
	// position (x, y, 1) and fixes z=0, w=1.
	TransformMatrix2D TransformMode = iota

	// TransformMatrix3D multiplies a 4x4 matrix by the homogeneous
	// position directly. The rasterizer performs the perspective divide.
	TransformMatrix3D

	// TransformPixelSpace maps a pixel-space position to clip space:
	// add Translation, divide by Resolution, scale to [-1, 1], flip y.
	TransformPixelSpace

	// TransformPixelSpaceMatrix applies Matrix2D to the position before
	// the pixel-to-clip conversion of TransformPixelSpace.
	TransformPixelSpaceMatrix

	// TransformLit multiplies the composite Matrix for the clip position
	// and separately transforms the normal (NormalMatrix if supplied,
	// otherwise Model with the normal treated as a direction). For point
	// lights it also emits the surface-to-light vector.
	TransformLit
)

// String returns the transform mode name.
func (m TransformMode) String() string {
	switch m {
	case TransformMatrix2D:
		return "Matrix2D"
	case TransformMatrix3D:
		return "Matrix3D"
	case TransformPixelSpace:
		return "PixelSpace"
	case TransformPixelSpaceMatrix:
		return "PixelSpaceMatrix"
	case TransformLit:
		return "Lit"
	default:
		return "Unknown"
	}
}

// LightMode selects which lighting formula the fragment stage applies.
type LightMode int

const (
	// LightFlat returns the uniform color unchanged.
	LightFlat LightMode = iota

	// LightVertexColor returns the interpolated vertex color unchanged.
	LightVertexColor

	// LightDirectional computes unclamped Lambertian intensity against a
	// directional light.
	LightDirectional

	// LightPoint computes Lambertian intensity against a point light,
	// clamped to [0, 1].
	LightPoint
)

// String returns the light mode name.
func (m LightMode) String() string {
	switch m {
	case LightFlat:
		return "Flat"
	case LightVertexColor:
		return "VertexColor"
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	default:
		return "Unknown"
	}
}

// Pipeline pairs a transform mode with a light model. The pair fully
// determines the uniform block shape, the vertex attribute set, and the
// varyings carried between the two stages; package layout exposes those
// as binding tables.
//
// A Pipeline is a value, not a resource: copying it is free and it holds
// no state across invocations.
type Pipeline struct {
	Transform TransformMode
	Light     LightMode
}

// Pipeline presets. Each corresponds to one fixed shader program in
// package wgsl.
var (
	// Solid2D draws 2D geometry through a 3x3 matrix in a flat color.
	Solid2D = Pipeline{TransformMatrix2D, LightFlat}

	// Solid3D draws 3D geometry through a 4x4 matrix in a flat color.
	Solid3D = Pipeline{TransformMatrix3D, LightFlat}

	// Screen2D draws pixel-space geometry in a flat color.
	Screen2D = Pipeline{TransformPixelSpace, LightFlat}

	// ScreenTransformed2D draws pixel-space geometry with a 3x3
	// pre-transform in a flat color.
	ScreenTransformed2D = Pipeline{TransformPixelSpaceMatrix, LightFlat}

	// VertexColor3D draws 3D geometry with per-vertex colors and no
	// lighting math.
	VertexColor3D = Pipeline{TransformMatrix3D, LightVertexColor}

	// Directional3D draws lit 3D geometry under a directional light.
	// The intensity is intentionally unclamped; see Pipeline.Fragment.
	Directional3D = Pipeline{TransformLit, LightDirectional}

	// PointLight3D draws lit 3D geometry under a point light with
	// clamped intensity.
	PointLight3D = Pipeline{TransformLit, LightPoint}
)

// Presets returns all supported pipeline presets in a stable order.
func Presets() []Pipeline {
	return []Pipeline{
		Solid2D, Solid3D, Screen2D, ScreenTransformed2D,
		VertexColor3D, Directional3D, PointLight3D,
	}
}

// String returns "Transform/Light", e.g. "Lit/Directional".
func (p Pipeline) String() string {
	return p.Transform.String() + "/" + p.Light.String()
}

// Name returns the preset name used for shader and layout lookup, or ""
// if the pairing is not a preset.
func (p Pipeline) Name() string {
	switch p {
	case Solid2D:
		return "solid2d"
	case Solid3D:
		return "solid3d"
	case Screen2D:
		return "screen2d"
	case ScreenTransformed2D:
		return "screen_transformed2d"
	case VertexColor3D:
		return "vertex_color3d"
	case Directional3D:
		return "directional3d"
	case PointLight3D:
		return "point_light3d"
	default:
		return ""
	}
}

// Validate reports whether the transform/light pairing is coherent.
// Lighting models that consume normals require the lit transform path,
// and the non-lit paths only make sense with flat or per-vertex color.
func (p Pipeline) Validate() error {
	switch p.Light {
	case LightDirectional, LightPoint:
		if p.Transform != TransformLit {
			return fmt.Errorf("shade: %s lighting requires the Lit transform, got %s", p.Light, p.Transform)
		}
	case LightFlat:
		// Valid with every transform mode.
	case LightVertexColor:
		if p.Transform == TransformLit {
			return fmt.Errorf("shade: vertex-color shading does not use the Lit transform")
		}
	default:
		return fmt.Errorf("shade: unknown light mode %d", int(p.Light))
	}
	switch p.Transform {
	case TransformMatrix2D, TransformMatrix3D, TransformPixelSpace,
		TransformPixelSpaceMatrix, TransformLit:
		return nil
	default:
		return fmt.Errorf("shade: unknown transform mode %d", int(p.Transform))
	}
}
