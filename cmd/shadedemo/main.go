// Command shadedemo renders a shading pipeline preset to a PNG using the
// CPU reference backend.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/softraster"
)

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		output = flag.String("output", "shade.png", "output file")
		preset = flag.String("preset", "directional3d", "pipeline preset: "+presetNames())
	)
	flag.Parse()

	p, ok := presetByName(*preset)
	if !ok {
		log.Fatalf("unknown preset %q, want one of: %s", *preset, presetNames())
	}

	r := softraster.New(*width, *height)
	r.Clear(shade.Color{R: 0.08, G: 0.09, B: 0.12, A: 1})

	if err := renderScene(r, p, *width, *height); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(r, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %s to %s (%dx%d)\n", p.Name(), *output, *width, *height)
}

func presetNames() string {
	names := make([]string, 0, len(shade.Presets()))
	for _, p := range shade.Presets() {
		names = append(names, p.Name())
	}
	return strings.Join(names, ", ")
}

func presetByName(name string) (shade.Pipeline, bool) {
	for _, p := range shade.Presets() {
		if p.Name() == name {
			return p, true
		}
	}
	return shade.Pipeline{}, false
}

// renderScene draws a demonstration scene appropriate for the preset.
func renderScene(r *softraster.Rasterizer, p shade.Pipeline, width, height int) error {
	switch p {
	case shade.Solid2D:
		u := &shade.Uniforms{
			Matrix2D: mgl32.Rotate3DZ(0.3).Mul3(mgl32.Scale2D(0.7, 0.7)),
			Color:    mgl32.Vec4{0.9, 0.4, 0.2, 1},
		}
		return r.Draw(p, u, []shade.VertexInput{
			shade.Pos2(-0.8, -0.6),
			shade.Pos2(0.8, -0.6),
			shade.Pos2(0, 0.9),
		})

	case shade.Solid3D:
		u := cubeUniforms(width, height)
		u.Color = mgl32.Vec4{0.3, 0.7, 0.9, 1}
		return r.Draw(p, u, cubeVertices())

	case shade.Screen2D:
		u := &shade.Uniforms{
			Color:      mgl32.Vec4{0.9, 0.8, 0.2, 1},
			Resolution: mgl32.Vec2{float32(width), float32(height)},
		}
		w, h := float32(width), float32(height)
		return r.Draw(p, u, []shade.VertexInput{
			shade.Pos2(w*0.2, h*0.8),
			shade.Pos2(w*0.8, h*0.8),
			shade.Pos2(w*0.5, h*0.2),
		})

	case shade.ScreenTransformed2D:
		u := &shade.Uniforms{
			Matrix2D:    mgl32.Rotate3DZ(0.2),
			Color:       mgl32.Vec4{0.5, 0.9, 0.5, 1},
			Resolution:  mgl32.Vec2{float32(width), float32(height)},
			Translation: mgl32.Vec2{float32(width) * 0.5, float32(height) * 0.5},
		}
		s := float32(width) * 0.3
		return r.Draw(p, u, []shade.VertexInput{
			shade.Pos2(-s, s*0.7),
			shade.Pos2(s, s*0.7),
			shade.Pos2(0, -s),
		})

	case shade.VertexColor3D:
		u := &shade.Uniforms{Matrix: mgl32.Ident4()}
		return r.Draw(p, u, []shade.VertexInput{
			shade.Pos3(-0.8, -0.7, 0).WithColor(1, 0, 0, 1),
			shade.Pos3(0.8, -0.7, 0).WithColor(0, 1, 0, 1),
			shade.Pos3(0, 0.9, 0).WithColor(0, 0, 1, 1),
		})

	case shade.Directional3D:
		u := cubeUniforms(width, height)
		u.LightColor = mgl32.Vec4{1, 0.95, 0.9, 1}
		u.LightDirection = shade.Normalize(mgl32.Vec3{-0.4, -1, -0.3})
		return r.Draw(p, u, cubeVertices())

	case shade.PointLight3D:
		u := cubeUniforms(width, height)
		u.NormalMatrix = shade.NormalMatrix(u.Model)
		u.HasNormalMatrix = true
		u.LightColor = mgl32.Vec4{1, 1, 1, 1}
		u.LightPosition = mgl32.Vec3{1.5, 2, 2}
		return r.Draw(p, u, cubeVertices())
	}
	return fmt.Errorf("no scene for pipeline %s", p)
}

// cubeUniforms sets up a perspective camera looking at a tilted unit cube.
func cubeUniforms(width, height int) *shade.Uniforms {
	proj := shade.PerspectiveProjection(math.Pi/4, float32(width)/float32(height), 0.1, 100)
	view := shade.LookAt(mgl32.Vec3{2.2, 1.8, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(0.6)
	return &shade.Uniforms{
		Matrix: proj.Mul4(view).Mul4(model),
		Model:  model,
	}
}

// cubeVertices returns a unit cube as a triangle list with face normals.
func cubeVertices() []shade.VertexInput {
	var verts []shade.VertexInput
	quad := func(a, b, c, d, n mgl32.Vec3) {
		for _, p := range []mgl32.Vec3{a, b, c, a, c, d} {
			verts = append(verts, shade.Pos3(p[0], p[1], p[2]).WithNormal(n[0], n[1], n[2]))
		}
	}

	const s = 0.5
	quad(mgl32.Vec3{-s, -s, s}, mgl32.Vec3{s, -s, s}, mgl32.Vec3{s, s, s}, mgl32.Vec3{-s, s, s}, mgl32.Vec3{0, 0, 1})
	quad(mgl32.Vec3{s, -s, -s}, mgl32.Vec3{-s, -s, -s}, mgl32.Vec3{-s, s, -s}, mgl32.Vec3{s, s, -s}, mgl32.Vec3{0, 0, -1})
	quad(mgl32.Vec3{s, -s, s}, mgl32.Vec3{s, -s, -s}, mgl32.Vec3{s, s, -s}, mgl32.Vec3{s, s, s}, mgl32.Vec3{1, 0, 0})
	quad(mgl32.Vec3{-s, -s, -s}, mgl32.Vec3{-s, -s, s}, mgl32.Vec3{-s, s, s}, mgl32.Vec3{-s, s, -s}, mgl32.Vec3{-1, 0, 0})
	quad(mgl32.Vec3{-s, s, s}, mgl32.Vec3{s, s, s}, mgl32.Vec3{s, s, -s}, mgl32.Vec3{-s, s, -s}, mgl32.Vec3{0, 1, 0})
	quad(mgl32.Vec3{-s, -s, -s}, mgl32.Vec3{s, -s, -s}, mgl32.Vec3{s, -s, s}, mgl32.Vec3{-s, -s, s}, mgl32.Vec3{0, -1, 0})
	return verts
}

func savePNG(r *softraster.Rasterizer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.Image())
}
