package shade

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// safeNormalize divides v by its Euclidean length. A zero-length vector
// has no direction; rather than propagate NaN through the lighting math,
// it normalizes to the zero vector. Lambertian intensity against a zero
// vector is then 0, which is the least surprising answer for degenerate
// geometry (e.g. a point light placed exactly on the surface).
func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Normalize returns v scaled to unit length, or the zero vector when v
// has zero length. This is the normalization policy both shading stages
// apply to interpolated direction vectors.
func Normalize(v mgl32.Vec3) mgl32.Vec3 { return safeNormalize(v) }

// clamp01 clamps x to [0, 1].
func clamp01(x float32) float32 {
	return float32(math.Max(0, math.Min(float64(x), 1)))
}

// NormalMatrix computes the inverse-transpose of the world matrix's
// upper-left 3x3 block. Normals transformed by this matrix stay
// perpendicular to their surface under non-uniform scaling, which the
// plain world matrix does not guarantee.
//
// Hosts compute this once per draw call and pass it through
// [Uniforms.NormalMatrix]; the shading stages never invert matrices
// themselves.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

// PerspectiveProjection builds a perspective projection matrix from a
// vertical field of view in radians, an aspect ratio (width/height), and
// positive near/far plane distances. The camera looks down -Z; depth maps
// to the [0, 1] WebGPU clip volume.
func PerspectiveProjection(fovRad, aspect, near, far float32) mgl32.Mat4 {
	f := float32(math.Tan(math.Pi*0.5 - 0.5*float64(fovRad)))
	rangeInv := 1 / (near - far)

	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far * rangeInv, -1,
		0, 0, near * far * rangeInv, 0,
	}
}

// PerspectiveProjectionInf builds a symmetric perspective projection with
// the far plane at infinity. right and top are the frustum half-extents
// at the near plane; near is the positive near plane distance.
func PerspectiveProjectionInf(right, top, near float32) mgl32.Mat4 {
	return mgl32.Mat4{
		near / right, 0, 0, 0,
		0, near / top, 0, 0,
		0, 0, -1, -1,
		0, 0, -near, 0,
	}
}

// OrthographicProjection builds an orthographic projection for the given
// view volume, mapping it to the [-1, 1] x [-1, 1] x [0, 1] WebGPU clip
// volume. Parallel lines stay parallel and size is distance-independent.
func OrthographicProjection(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	rangeInv := 1 / (near - far)

	return mgl32.Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, rangeInv, 0,
		(right + left) / (left - right), (top + bottom) / (bottom - top), near * rangeInv, 1,
	}
}

// LookAt builds a view matrix for a camera at eye looking toward center
// with the given up vector.
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}
