// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shade"
)

func TestForRejectsNonPresets(t *testing.T) {
	invalid := []shade.Pipeline{
		{Transform: shade.TransformMatrix2D, Light: shade.LightDirectional},
		{Transform: shade.TransformPixelSpace, Light: shade.LightPoint},
		{Transform: shade.TransformLit, Light: shade.LightVertexColor},
		// Coherent pairing, but not a preset: no shader or table exists.
		{Transform: shade.TransformPixelSpace, Light: shade.LightVertexColor},
	}
	for _, p := range invalid {
		if _, err := For(p); err == nil {
			t.Errorf("For(%v) = nil error, want configuration error", p)
		}
	}
}

func TestForCoversAllPresets(t *testing.T) {
	for _, p := range shade.Presets() {
		l, err := For(p)
		if err != nil {
			t.Fatalf("For(%s): %v", p.Name(), err)
		}
		if l.Pipeline != p {
			t.Errorf("%s: table pipeline = %v, want %v", p.Name(), l.Pipeline, p)
		}
		if len(l.UniformFields) == 0 {
			t.Errorf("%s: no uniform fields", p.Name())
		}
		if len(l.Attributes) == 0 {
			t.Errorf("%s: no vertex attributes", p.Name())
		}
		if len(l.Varyings) == 0 || l.Varyings[0] != "position" {
			t.Errorf("%s: varyings %v must start with position", p.Name(), l.Varyings)
		}
	}
}

func TestUniformFieldsPackTight(t *testing.T) {
	// Fields are declaration-ordered, non-overlapping, and the block size
	// is a padded 16-byte multiple that covers the last field.
	for _, p := range shade.Presets() {
		l, err := For(p)
		if err != nil {
			t.Fatalf("For(%s): %v", p.Name(), err)
		}
		var end uint32
		for _, f := range l.UniformFields {
			if f.Offset < end {
				t.Errorf("%s: field %s at offset %d overlaps previous end %d", p.Name(), f.Name, f.Offset, end)
			}
			end = f.Offset + f.Size
		}
		if l.UniformSize%16 != 0 {
			t.Errorf("%s: uniform size %d is not a 16-byte multiple", p.Name(), l.UniformSize)
		}
		if end > l.UniformSize {
			t.Errorf("%s: last field ends at %d past uniform size %d", p.Name(), end, l.UniformSize)
		}
	}
}

func TestUniformSizes(t *testing.T) {
	tests := []struct {
		p    shade.Pipeline
		size uint32
	}{
		{shade.Solid2D, 64},
		{shade.Solid3D, 80},
		{shade.Screen2D, 32},
		{shade.ScreenTransformed2D, 80},
		{shade.VertexColor3D, 64},
		{shade.Directional3D, 160},
		{shade.PointLight3D, 208},
	}
	for _, tt := range tests {
		l, err := For(tt.p)
		if err != nil {
			t.Fatalf("For(%s): %v", tt.p.Name(), err)
		}
		if l.UniformSize != tt.size {
			t.Errorf("%s: uniform size = %d, want %d", tt.p.Name(), l.UniformSize, tt.size)
		}
	}
}

func TestVertexAttributesCoverStride(t *testing.T) {
	for _, p := range shade.Presets() {
		l, err := For(p)
		if err != nil {
			t.Fatalf("For(%s): %v", p.Name(), err)
		}
		var end uint64
		locs := map[uint32]bool{}
		for _, a := range l.Attributes {
			if locs[a.ShaderLocation] {
				t.Errorf("%s: duplicate shader location %d", p.Name(), a.ShaderLocation)
			}
			locs[a.ShaderLocation] = true
			n, err := componentCount(a.Format)
			if err != nil {
				t.Fatalf("%s: %v", p.Name(), err)
			}
			if e := uint64(a.Offset) + uint64(n)*4; e > end {
				end = e
			}
		}
		if end != uint64(l.VertexStride) {
			t.Errorf("%s: attributes end at %d, stride %d", p.Name(), end, l.VertexStride)
		}
		if !locs[0] {
			t.Errorf("%s: missing position attribute at location 0", p.Name())
		}
	}
}

func TestField(t *testing.T) {
	l, err := For(shade.Directional3D)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := l.Field("light_direction")
	if !ok {
		t.Fatal("Field(light_direction) not found")
	}
	if f.Offset != 144 || f.Size != sizeVec3 {
		t.Errorf("light_direction = %+v, want offset 144 size %d", f, sizeVec3)
	}
	if _, ok := l.Field("normal_matrix"); ok {
		t.Error("directional table should not carry normal_matrix")
	}
}

func TestVertexBuffers(t *testing.T) {
	l, err := For(shade.VertexColor3D)
	if err != nil {
		t.Fatal(err)
	}
	bufs := l.VertexBuffers()
	if len(bufs) != 1 {
		t.Fatalf("VertexBuffers() returned %d buffers, want 1", len(bufs))
	}
	b := bufs[0]
	if b.ArrayStride != uint64(l.VertexStride) {
		t.Errorf("ArrayStride = %d, want %d", b.ArrayStride, l.VertexStride)
	}
	if b.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", b.StepMode)
	}
	if len(b.Attributes) != 2 {
		t.Errorf("Attributes = %d, want 2", len(b.Attributes))
	}
}

func TestBindGroupLayoutEntries(t *testing.T) {
	l, err := For(shade.Solid2D)
	if err != nil {
		t.Fatal(err)
	}
	entries := l.BindGroupLayoutEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Binding != 0 {
		t.Errorf("Binding = %d, want 0", e.Binding)
	}
	if e.Visibility != gputypes.ShaderStageVertex|gputypes.ShaderStageFragment {
		t.Errorf("Visibility = %v, want vertex|fragment", e.Visibility)
	}
	if e.Buffer == nil || e.Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Errorf("Buffer binding = %+v, want uniform", e.Buffer)
	}
}
