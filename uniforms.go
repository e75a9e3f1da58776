package shade

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is the read-only per-draw state shared by every invocation of
// one draw call. Which fields are live depends on the pipeline; the
// binding tables in package layout name them per preset, and fields a
// pipeline does not list are ignored by both stages.
//
// The core never mutates a Uniforms value. Hosts build one per draw call
// and may discard it afterwards.
type Uniforms struct {
	// Color is the flat draw color for the LightFlat model.
	Color mgl32.Vec4

	// Matrix2D is the 3x3 transform for the 2D transform modes.
	Matrix2D mgl32.Mat3

	// Matrix is the composite (typically world-view-projection) 4x4
	// matrix used for the clip-space position.
	Matrix mgl32.Mat4

	// Model is the world matrix, used only to transform normals and
	// surface points in the Lit path. Callers keep it consistent with
	// Matrix; the core does not re-derive one from the other.
	Model mgl32.Mat4

	// NormalMatrix is the precomputed inverse-transpose of Model's
	// upper-left 3x3, produced by NormalMatrix(). Used instead of Model
	// for normals when HasNormalMatrix is set.
	NormalMatrix mgl32.Mat3

	// HasNormalMatrix selects NormalMatrix over Model for transforming
	// normals in the Lit path.
	HasNormalMatrix bool

	// Resolution is the viewport size in pixels for the pixel-space
	// transform modes.
	Resolution mgl32.Vec2

	// Translation is the pixel-space offset added before the
	// pixel-to-clip conversion.
	Translation mgl32.Vec2

	// LightColor is the light's RGBA color for the lighting models.
	LightColor mgl32.Vec4

	// LightDirection is the direction the directional light travels,
	// in world space. It should be unit length.
	LightDirection mgl32.Vec3

	// LightPosition is the point light's world-space position.
	LightPosition mgl32.Vec3
}
