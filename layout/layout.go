// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shade"
)

// UniformField describes one field of a pipeline's uniform block.
type UniformField struct {
	// Name identifies the field: "color", "matrix2d", "matrix", "model",
	// "normal_matrix", "resolution", "translation", "light_color",
	// "light_direction", or "light_position".
	Name string

	// Offset is the byte offset within the uniform block.
	Offset uint32

	// Size is the field's size in bytes, including the column padding of
	// mat3x3 fields but not trailing struct padding.
	Size uint32
}

// Layout is the complete binding table for one pipeline preset.
// Must match the uniform struct and attribute locations in the preset's
// WGSL program.
type Layout struct {
	// Pipeline is the preset this table describes.
	Pipeline shade.Pipeline

	// UniformFields lists the uniform block's fields in declaration
	// order with their WGSL offsets.
	UniformFields []UniformField

	// UniformSize is the uniform block's total size in bytes, padded to
	// a 16-byte multiple.
	UniformSize uint32

	// Attributes lists the vertex attributes with their shader locations
	// and byte offsets.
	Attributes []gputypes.VertexAttribute

	// VertexStride is the byte stride between consecutive vertices.
	VertexStride uint32

	// Varyings names the interpolated attributes the vertex stage emits,
	// always starting with "position".
	Varyings []string
}

// Uniform block field sizes in bytes under WGSL layout rules.
const (
	sizeVec2 = 8
	sizeVec3 = 12
	sizeVec4 = 16
	sizeMat3 = 48 // three 16-byte columns
	sizeMat4 = 64
)

// For returns the binding table for a pipeline preset. Non-preset
// pairings have no table shape and return an error; this is the
// configuration-error check hosts run at pipeline-setup time.
func For(p shade.Pipeline) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}

	switch p {
	case shade.Solid2D:
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "matrix2d", Offset: 0, Size: sizeMat3},
				{Name: "color", Offset: 48, Size: sizeVec4},
			},
			UniformSize: 64,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
			VertexStride: 8,
			Varyings:     []string{"position"},
		}, nil

	case shade.Solid3D:
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "matrix", Offset: 0, Size: sizeMat4},
				{Name: "color", Offset: 64, Size: sizeVec4},
			},
			UniformSize: 80,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
			VertexStride: 12,
			Varyings:     []string{"position"},
		}, nil

	case shade.Screen2D:
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "color", Offset: 0, Size: sizeVec4},
				{Name: "resolution", Offset: 16, Size: sizeVec2},
				{Name: "translation", Offset: 24, Size: sizeVec2},
			},
			UniformSize: 32,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
			VertexStride: 8,
			Varyings:     []string{"position"},
		}, nil

	case shade.ScreenTransformed2D:
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "matrix2d", Offset: 0, Size: sizeMat3},
				{Name: "color", Offset: 48, Size: sizeVec4},
				{Name: "resolution", Offset: 64, Size: sizeVec2},
				{Name: "translation", Offset: 72, Size: sizeVec2},
			},
			UniformSize: 80,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
			VertexStride: 8,
			Varyings:     []string{"position"},
		}, nil

	case shade.VertexColor3D:
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "matrix", Offset: 0, Size: sizeMat4},
			},
			UniformSize: 64,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
			},
			VertexStride: 28,
			Varyings:     []string{"position", "color"},
		}, nil

	case shade.Directional3D:
		// The normal is transformed by the world matrix with w=0; this
		// preset carries no precomputed normal matrix.
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "matrix", Offset: 0, Size: sizeMat4},
				{Name: "model", Offset: 64, Size: sizeMat4},
				{Name: "light_color", Offset: 128, Size: sizeVec4},
				{Name: "light_direction", Offset: 144, Size: sizeVec3},
			},
			UniformSize: 160,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			},
			VertexStride: 24,
			Varyings:     []string{"position", "normal"},
		}, nil

	case shade.PointLight3D:
		// Normals go through the precomputed inverse-transpose matrix;
		// the world matrix is used for the surface point only.
		return Layout{
			Pipeline: p,
			UniformFields: []UniformField{
				{Name: "matrix", Offset: 0, Size: sizeMat4},
				{Name: "model", Offset: 64, Size: sizeMat4},
				{Name: "normal_matrix", Offset: 128, Size: sizeMat3},
				{Name: "light_color", Offset: 176, Size: sizeVec4},
				{Name: "light_position", Offset: 192, Size: sizeVec3},
			},
			UniformSize: 208,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			},
			VertexStride: 24,
			Varyings:     []string{"position", "normal", "surface_to_light"},
		}, nil
	}

	return Layout{}, fmt.Errorf("layout: %s is not a preset pipeline", p)
}

// Field returns the uniform field with the given name.
func (l Layout) Field(name string) (UniformField, bool) {
	for _, f := range l.UniformFields {
		if f.Name == name {
			return f, true
		}
	}
	return UniformField{}, false
}

// VertexBuffers returns the layout as WebGPU vertex buffer descriptors:
// a single per-vertex buffer holding all attributes.
func (l Layout) VertexBuffers() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: uint64(l.VertexStride),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  l.Attributes,
		},
	}
}

// BindGroupLayoutEntries returns the bind group layout for the uniform
// block: a single uniform buffer at binding 0, visible to both stages.
func (l Layout) BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
}
