// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shade"
)

func TestNewRenderPipelineRequiresDevice(t *testing.T) {
	if _, err := NewRenderPipeline(nil, nil, shade.Solid2D, gputypes.TextureFormatBGRA8Unorm); err == nil {
		t.Fatal("NewRenderPipeline(nil, nil, ...) should fail")
	}
}

func TestDestroyZeroValue(t *testing.T) {
	// Destroy must be safe on a partially constructed pipeline; the
	// constructor calls it on its own error path.
	var p RenderPipeline
	p.Destroy()
	p.Destroy() // idempotent
}

// noHalProvider satisfies DeviceHandle-ish shape without HAL accessors.
type noHalProvider struct{}

// nilHalProvider exposes the accessors but returns nothing usable.
type nilHalProvider struct{}

func (nilHalProvider) HalDevice() any { return nil }
func (nilHalProvider) HalQueue() any  { return nil }

func TestDeviceFromProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider any
	}{
		{"provider without HAL accessors", noHalProvider{}},
		{"provider with nil HAL objects", nilHalProvider{}},
		{"nil provider", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DeviceFromProvider(tt.provider); err == nil {
				t.Fatal("DeviceFromProvider should fail")
			}
		})
	}
}

func TestNewRenderPipelineFromProviderPropagatesError(t *testing.T) {
	if _, err := NewRenderPipelineFromProvider(nilHalProvider{}, shade.Solid2D, gputypes.TextureFormatBGRA8Unorm); err == nil {
		t.Fatal("pipeline construction from an unusable provider should fail")
	}
}
