// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package softraster is a CPU reference backend for the shading core: a
// perspective-correct triangle rasterizer that drives Pipeline.Vertex and
// Pipeline.Fragment exactly the way a GPU backend would. It exists for
// hosts without a GPU and as the end-to-end test vehicle for the shading
// pipelines; it is optimized for correctness, not speed.
package softraster

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/shade"
)

// Rasterizer renders triangles through a shading pipeline into an RGBA
// image with a depth buffer.
type Rasterizer struct {
	img    *image.RGBA
	depth  []float32
	width  int
	height int
}

// New creates a rasterizer with the given viewport size.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
		width:  width,
		height: height,
	}
	r.Clear(shade.Color{})
	return r
}

// Image returns the render target. The returned image is live: later
// Draw calls mutate it.
func (r *Rasterizer) Image() *image.RGBA { return r.img }

// Clear fills the target with a color and resets the depth buffer.
func (r *Rasterizer) Clear(c shade.Color) {
	nrgba := c.Color()
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.img.Set(x, y, nrgba)
		}
	}
	for i := range r.depth {
		r.depth[i] = math.MaxFloat32
	}
}

// Draw rasterizes a triangle list (three vertices per triangle) through
// the pipeline. Each vertex invocation and each fragment invocation is
// independent; the rasterizer owns the interpolation step between them,
// interpolating every varying linearly in screen space and dividing by
// the interpolated clip-space w.
func (r *Rasterizer) Draw(p shade.Pipeline, u *shade.Uniforms, verts []shade.VertexInput) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(verts)%3 != 0 {
		return fmt.Errorf("softraster: vertex count %d is not a multiple of 3", len(verts))
	}

	for i := 0; i+2 < len(verts); i += 3 {
		var out [3]shade.Varyings
		for j := 0; j < 3; j++ {
			out[j] = p.Vertex(verts[i+j], u)
		}
		r.triangle(p, u, out)
	}
	return nil
}

// screenVertex is one triangle corner after the perspective divide.
type screenVertex struct {
	x, y float32 // pixel coordinates
	z    float32 // NDC depth
	wInv float32 // 1/clip.w, for perspective-correct interpolation
	v    shade.Varyings
}

// triangle rasterizes one triangle given its vertex-stage outputs.
func (r *Rasterizer) triangle(p shade.Pipeline, u *shade.Uniforms, out [3]shade.Varyings) {
	var sv [3]screenVertex
	for j, o := range out {
		w := o.Position[3]
		if w <= 0 {
			// Behind the eye. Proper near-plane clipping is out of
			// scope for a reference backend; drop the triangle.
			return
		}
		ndcX := o.Position[0] / w
		ndcY := o.Position[1] / w
		sv[j] = screenVertex{
			x:    (ndcX + 1) * 0.5 * float32(r.width),
			y:    (1 - ndcY) * 0.5 * float32(r.height),
			z:    o.Position[2] / w,
			wInv: 1 / w,
			v:    o,
		}
	}

	area := edge(sv[0].x, sv[0].y, sv[1].x, sv[1].y, sv[2].x, sv[2].y)
	if area == 0 {
		return
	}

	minX := clampInt(int(minf(sv[0].x, sv[1].x, sv[2].x)), 0, r.width-1)
	maxX := clampInt(int(maxf(sv[0].x, sv[1].x, sv[2].x))+1, 0, r.width-1)
	minY := clampInt(int(minf(sv[0].y, sv[1].y, sv[2].y)), 0, r.height-1)
	maxY := clampInt(int(maxf(sv[0].y, sv[1].y, sv[2].y))+1, 0, r.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			b0 := edge(sv[1].x, sv[1].y, sv[2].x, sv[2].y, px, py) / area
			b1 := edge(sv[2].x, sv[2].y, sv[0].x, sv[0].y, px, py) / area
			b2 := edge(sv[0].x, sv[0].y, sv[1].x, sv[1].y, px, py) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*sv[0].z + b1*sv[1].z + b2*sv[2].z
			idx := y*r.width + x
			if z >= r.depth[idx] {
				continue
			}

			frag := interpolate(sv, b0, b1, b2)
			r.depth[idx] = z
			r.img.Set(x, y, p.Fragment(frag, u).Color())
		}
	}
}

// interpolate blends the three vertices' varyings at barycentric weights
// (b0, b1, b2), perspective-correctly: attributes are interpolated as
// attr/w and divided by the interpolated 1/w.
func interpolate(sv [3]screenVertex, b0, b1, b2 float32) shade.Varyings {
	wInv := b0*sv[0].wInv + b1*sv[1].wInv + b2*sv[2].wInv

	var frag shade.Varyings
	for k := 0; k < 4; k++ {
		frag.Position[k] = persp(sv[0].v.Position[k], sv[1].v.Position[k], sv[2].v.Position[k], sv, b0, b1, b2, wInv)
		frag.Color[k] = persp(sv[0].v.Color[k], sv[1].v.Color[k], sv[2].v.Color[k], sv, b0, b1, b2, wInv)
	}
	for k := 0; k < 3; k++ {
		frag.Normal[k] = persp(sv[0].v.Normal[k], sv[1].v.Normal[k], sv[2].v.Normal[k], sv, b0, b1, b2, wInv)
		frag.SurfaceToLight[k] = persp(sv[0].v.SurfaceToLight[k], sv[1].v.SurfaceToLight[k], sv[2].v.SurfaceToLight[k], sv, b0, b1, b2, wInv)
	}
	return frag
}

// persp interpolates one scalar varying perspective-correctly.
func persp(a0, a1, a2 float32, sv [3]screenVertex, b0, b1, b2, wInv float32) float32 {
	return (b0*a0*sv[0].wInv + b1*a1*sv[1].wInv + b2*a2*sv[2].wInv) / wInv
}

// edge is the signed area of the parallelogram spanned by (b-a, c-a);
// its sign tells which side of edge ab the point c lies on.
func edge(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func minf(a, b, c float32) float32 {
	return float32(math.Min(float64(a), math.Min(float64(b), float64(c))))
}

func maxf(a, b, c float32) float32 {
	return float32(math.Max(float64(a), math.Max(float64(b), float64(c))))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
