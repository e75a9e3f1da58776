// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shade"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g. a gogpu.App) owns the GPU device and passes it in;
// this package never creates one. DeviceHandle is an alias for
// gpucontext.DeviceProvider so any gogpu-ecosystem host satisfies it
// directly.
type DeviceHandle = gpucontext.DeviceProvider

// halProvider is the gogpu device-sharing convention: providers expose
// their raw HAL objects as any-typed accessors to avoid a hard dependency
// on a specific wgpu version.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// DeviceFromProvider extracts the hal.Device and hal.Queue from a device
// provider following the HalDevice()/HalQueue() convention. It returns an
// error when the provider does not expose HAL access or exposes objects
// of an unexpected type.
func DeviceFromProvider(provider any) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("backend: provider %T does not expose HalDevice()/HalQueue()", provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("backend: provider %T returned no usable hal.Device", provider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("backend: provider %T returned no usable hal.Queue", provider)
	}
	return device, queue, nil
}

// NewRenderPipelineFromProvider builds a render pipeline for a preset
// using a shared device from the host's provider.
func NewRenderPipelineFromProvider(provider any, preset shade.Pipeline, format gputypes.TextureFormat) (*RenderPipeline, error) {
	device, queue, err := DeviceFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewRenderPipeline(device, queue, preset, format)
}
