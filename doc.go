// Package shade implements a uniform-buffer-driven transform and shading
// pipeline for 2D and 3D geometry.
//
// # Overview
//
// shade is the shading core of a renderer: the pure numeric path from
// object-space vertex attributes and per-draw uniform state to clip-space
// positions and per-pixel color. It deliberately contains nothing else:
// no scene graph, no asset loading, no device management. Hosts supply
// geometry and uniforms; backends supply parallel execution and attribute
// interpolation.
//
// # Quick Start
//
//	p := shade.Directional3D
//	u := &shade.Uniforms{
//	    Matrix:         proj.Mul4(view).Mul4(model),
//	    Model:          model,
//	    NormalMatrix:   shade.NormalMatrix(model),
//	    HasNormalMatrix: true,
//	    LightColor:     mgl32.Vec4{1, 1, 1, 1},
//	    LightDirection: mgl32.Vec3{0, -1, 0},
//	}
//
//	// Per vertex:
//	out := p.Vertex(shade.Pos3(x, y, z).WithNormal(nx, ny, nz), u)
//
//	// Per covered pixel, after the backend interpolates out:
//	c := p.Fragment(interpolated, u)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pipeline (transform mode + light model), Uniforms,
//     VertexInput, Varyings, Color, and the linear-algebra utilities
//   - layout: per-pipeline uniform and vertex attribute binding tables
//   - wgsl: embedded WGSL programs matching the layout tables
//   - backend: WebGPU HAL render pipeline construction
//   - softraster: CPU reference backend
//
// # Execution Model
//
// Pipeline.Vertex and Pipeline.Fragment are pure functions over explicit
// inputs. They hold no state, observe no invocation order, and never
// block, so a backend may run them on as many lanes as it likes with no
// synchronization. The only shared input is the read-only Uniforms value
// for one draw call.
//
// # Coordinate System
//
// The vertex stage produces clip space: a point is visible when
// -w <= x,y,z <= w, and the rasterizer performs the perspective divide.
// The pixel-space transform modes follow screen conventions (origin
// top-left, y down) and flip y during the pixel-to-clip conversion.
package shade

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
