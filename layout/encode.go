// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/shade"
)

// EncodeUniforms serializes the live fields of u into a byte slice laid
// out exactly as the layout's uniform block: little-endian float32 at the
// table offsets, mat3x3 columns padded to 16 bytes, total length
// l.UniformSize. The result is ready for queue.WriteBuffer.
//
// Encoding fails only for configuration errors: a table that names
// normal_matrix while u.HasNormalMatrix is unset means the caller never
// ran the precomputation the field requires.
func EncodeUniforms(l Layout, u *shade.Uniforms) ([]byte, error) {
	buf := make([]byte, l.UniformSize)
	for _, f := range l.UniformFields {
		switch f.Name {
		case "color":
			putVec4(buf[f.Offset:], u.Color)
		case "matrix2d":
			putMat3(buf[f.Offset:], u.Matrix2D)
		case "matrix":
			putMat4(buf[f.Offset:], u.Matrix)
		case "model":
			putMat4(buf[f.Offset:], u.Model)
		case "normal_matrix":
			if !u.HasNormalMatrix {
				return nil, fmt.Errorf("layout: %s needs a precomputed normal matrix (see shade.NormalMatrix)", l.Pipeline)
			}
			putMat3(buf[f.Offset:], u.NormalMatrix)
		case "resolution":
			putVec2(buf[f.Offset:], u.Resolution)
		case "translation":
			putVec2(buf[f.Offset:], u.Translation)
		case "light_color":
			putVec4(buf[f.Offset:], u.LightColor)
		case "light_direction":
			putVec3(buf[f.Offset:], u.LightDirection)
		case "light_position":
			putVec3(buf[f.Offset:], u.LightPosition)
		default:
			return nil, fmt.Errorf("layout: unknown uniform field %q", f.Name)
		}
	}
	return buf, nil
}

// EncodeVertices serializes vertices into the layout's interleaved
// per-vertex format. Attribute location 0 is always the position
// (truncated to the attribute's component count); location 1 is the
// vertex color for color pipelines and the normal otherwise.
func EncodeVertices(l Layout, verts []shade.VertexInput) ([]byte, error) {
	buf := make([]byte, int(l.VertexStride)*len(verts))
	for i, v := range verts {
		base := uint32(i) * l.VertexStride
		for _, a := range l.Attributes {
			n, err := componentCount(a.Format)
			if err != nil {
				return nil, err
			}
			src, err := attributeSource(l.Pipeline, a.ShaderLocation, v)
			if err != nil {
				return nil, err
			}
			putF32s(buf[base+uint32(a.Offset):], src[:n])
		}
	}
	return buf, nil
}

// attributeSource picks the vertex field feeding a shader location.
func attributeSource(p shade.Pipeline, location uint32, v shade.VertexInput) ([4]float32, error) {
	switch location {
	case 0:
		return [4]float32{v.Position[0], v.Position[1], v.Position[2], v.Position[3]}, nil
	case 1:
		if p.Light == shade.LightVertexColor {
			return [4]float32{v.Color[0], v.Color[1], v.Color[2], v.Color[3]}, nil
		}
		return [4]float32{v.Normal[0], v.Normal[1], v.Normal[2], 0}, nil
	default:
		return [4]float32{}, fmt.Errorf("layout: no attribute at location %d", location)
	}
}

// componentCount returns the number of float32 components of a format.
func componentCount(f gputypes.VertexFormat) (int, error) {
	switch f {
	case gputypes.VertexFormatFloat32:
		return 1, nil
	case gputypes.VertexFormatFloat32x2:
		return 2, nil
	case gputypes.VertexFormatFloat32x3:
		return 3, nil
	case gputypes.VertexFormatFloat32x4:
		return 4, nil
	default:
		return 0, fmt.Errorf("layout: unsupported vertex format %v", f)
	}
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b[:4], math.Float32bits(v))
}

func putF32s(b []byte, vs []float32) {
	for i, v := range vs {
		putF32(b[i*4:], v)
	}
}

func putVec2(b []byte, v mgl32.Vec2) { putF32s(b, v[:]) }
func putVec3(b []byte, v mgl32.Vec3) { putF32s(b, v[:]) }
func putVec4(b []byte, v mgl32.Vec4) { putF32s(b, v[:]) }

// putMat4 writes a column-major mat4x4: 16 contiguous floats.
func putMat4(b []byte, m mgl32.Mat4) { putF32s(b, m[:]) }

// putMat3 writes a WGSL mat3x3: three columns, each padded to 16 bytes.
func putMat3(b []byte, m mgl32.Mat3) {
	for col := 0; col < 3; col++ {
		putF32s(b[col*16:], m[col*3:col*3+3])
	}
}
