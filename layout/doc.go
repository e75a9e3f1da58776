// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout defines the binding tables for each shading pipeline
// preset: the fixed field order and byte offsets of the uniform block,
// the vertex attribute layout, and the varyings carried between the two
// shading stages.
//
// The shading stages index into uniforms and attributes by name with no
// runtime type checking, so these tables are the single source of truth
// that hosts, the WGSL programs in package wgsl, and the GPU pipelines in
// package backend must all agree on. Uniform offsets follow WGSL
// struct layout rules (vec2 aligned to 8, vec3/vec4 to 16, mat3x3 stored
// as three 16-byte columns, mat4x4 as 64 bytes).
//
// The tables are configuration, not computation: how a host allocates,
// uploads, and binds the described buffers is its own concern. The
// encoders in this package produce correctly laid-out bytes for hosts
// that want them.
package layout
