// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend assembles WebGPU HAL render pipelines for the shading
// presets in package shade.
//
// The package receives a GPU device from the host, it does not create
// one: pass a hal.Device/hal.Queue pair directly, or any device provider
// exposing HalDevice()/HalQueue() (the gogpu sharing convention). Buffer
// contents come from the encoders in package layout and the programs in
// package wgsl, so the pipeline, its bind group layout, and its vertex
// state always agree with the preset's binding table.
package backend
