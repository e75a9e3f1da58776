package shade

import "github.com/go-gl/mathgl/mgl32"

// VertexInput holds one vertex's object-space attributes. Position is
// always present in promoted homogeneous form; Normal and Color are only
// consumed by pipelines whose binding table lists them.
type VertexInput struct {
	// Position is the homogeneous object-space position. Use Pos2, Pos3
	// or Pos4 to promote 2-, 3- or 4-component input.
	Position mgl32.Vec4

	// Normal is the object-space surface normal.
	Normal mgl32.Vec3

	// Color is the per-vertex color.
	Color mgl32.Vec4
}

// Pos2 promotes a 2D position to homogeneous form (x, y, 0, 1).
func Pos2(x, y float32) VertexInput {
	return VertexInput{Position: mgl32.Vec4{x, y, 0, 1}}
}

// Pos3 promotes a 3D position to homogeneous form (x, y, z, 1).
func Pos3(x, y, z float32) VertexInput {
	return VertexInput{Position: mgl32.Vec4{x, y, z, 1}}
}

// Pos4 wraps a position already in homogeneous form.
func Pos4(x, y, z, w float32) VertexInput {
	return VertexInput{Position: mgl32.Vec4{x, y, z, w}}
}

// WithNormal returns a copy of the vertex with the given normal.
func (v VertexInput) WithNormal(x, y, z float32) VertexInput {
	v.Normal = mgl32.Vec3{x, y, z}
	return v
}

// WithColor returns a copy of the vertex with the given color.
func (v VertexInput) WithColor(r, g, b, a float32) VertexInput {
	v.Color = mgl32.Vec4{r, g, b, a}
	return v
}

// Varyings is the vertex stage's output, carried to the fragment stage.
// The backend interpolates every field linearly across the primitive and
// divides by the interpolated clip-space w before invoking the fragment
// stage; direction vectors arrive denormalized and the fragment stage
// re-normalizes them.
//
// A Varyings value is produced fresh per vertex and consumed exactly once
// per fragment. Nothing persists across invocations.
type Varyings struct {
	// Position is the clip-space position. Its z and w components are
	// owned by the transform stage; the lighting stage never reads them.
	Position mgl32.Vec4

	// Normal is the world-space surface normal, denormalized by
	// interpolation.
	Normal mgl32.Vec3

	// Color is the interpolated per-vertex color.
	Color mgl32.Vec4

	// SurfaceToLight points from the world-space surface position to the
	// point light, denormalized by interpolation.
	SurfaceToLight mgl32.Vec3
}
