// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgsl carries the WGSL program for each shading pipeline preset
// and compiles WGSL to SPIR-V for backends that want it.
//
// Each program's uniform struct and attribute locations match the
// preset's binding table in package layout byte-for-byte; the layout
// tests pin that correspondence.
package wgsl

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/shade"
)

// Embedded WGSL shader sources, one program per pipeline preset.

//go:embed shaders/solid2d.wgsl
var solid2DSource string

//go:embed shaders/solid3d.wgsl
var solid3DSource string

//go:embed shaders/screen2d.wgsl
var screen2DSource string

//go:embed shaders/screen_transformed2d.wgsl
var screenTransformed2DSource string

//go:embed shaders/vertex_color3d.wgsl
var vertexColor3DSource string

//go:embed shaders/directional3d.wgsl
var directional3DSource string

//go:embed shaders/point_light3d.wgsl
var pointLight3DSource string

// Entry point names shared by every program.
const (
	// VertexEntryPoint is the vertex stage entry point name.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint is the fragment stage entry point name.
	FragmentEntryPoint = "fs_main"
)

// Source returns the WGSL program for a pipeline preset.
func Source(p shade.Pipeline) (string, error) {
	var src string
	switch p {
	case shade.Solid2D:
		src = solid2DSource
	case shade.Solid3D:
		src = solid3DSource
	case shade.Screen2D:
		src = screen2DSource
	case shade.ScreenTransformed2D:
		src = screenTransformed2DSource
	case shade.VertexColor3D:
		src = vertexColor3DSource
	case shade.Directional3D:
		src = directional3DSource
	case shade.PointLight3D:
		src = pointLight3DSource
	default:
		return "", fmt.Errorf("wgsl: no program for pipeline %s", p)
	}
	if src == "" {
		return "", fmt.Errorf("wgsl: %s shader source is empty", p.Name())
	}
	return src, nil
}

// CompileSPIRV compiles WGSL source to a SPIR-V uint32 word slice.
func CompileSPIRV(wgslSource string) ([]uint32, error) {
	// Compile WGSL to SPIR-V bytes
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgsl: failed to compile shader: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
