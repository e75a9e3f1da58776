// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/layout"
	"github.com/gogpu/shade/wgsl"
)

// RenderPipeline holds the GPU objects for one shading preset: the
// compiled shader module, the uniform bind group layout, the pipeline
// layout, and the render pipeline itself. Create one per preset and
// target format; it is valid for the device's lifetime.
type RenderPipeline struct {
	device hal.Device
	queue  hal.Queue
	preset shade.Pipeline
	table  layout.Layout
	format gputypes.TextureFormat

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
}

// NewRenderPipeline builds the render pipeline for a shading preset
// targeting the given color format. The shader, bind group layout, and
// vertex state all derive from the preset's binding table, so a table or
// shader mismatch surfaces here, at setup time, not at draw time.
func NewRenderPipeline(device hal.Device, queue hal.Queue, preset shade.Pipeline, format gputypes.TextureFormat) (*RenderPipeline, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("backend: device and queue are required")
	}
	table, err := layout.For(preset)
	if err != nil {
		return nil, err
	}
	src, err := wgsl.Source(preset)
	if err != nil {
		return nil, err
	}

	p := &RenderPipeline{
		device: device,
		queue:  queue,
		preset: preset,
		table:  table,
		format: format,
	}
	if err := p.create(src); err != nil {
		p.Destroy()
		return nil, err
	}

	shade.Logger().Debug("render pipeline created",
		"pipeline", preset.String(),
		"uniformSize", table.UniformSize,
		"vertexStride", table.VertexStride)
	return p, nil
}

// create compiles the shader and builds the layouts and pipeline.
func (p *RenderPipeline) create(src string) error {
	name := p.preset.Name()

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  name + "_shader",
		Source: hal.ShaderSource{WGSL: src},
	})
	if err != nil {
		return fmt.Errorf("compile %s shader: %w", name, err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   name + "_uniform_layout",
		Entries: p.table.BindGroupLayoutEntries(),
	})
	if err != nil {
		return fmt.Errorf("create uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            name + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  name + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: wgsl.VertexEntryPoint,
			Buffers:    p.table.VertexBuffers(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: wgsl.FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// Destroy releases all GPU resources in reverse creation order. Safe to
// call multiple times or on a partially constructed pipeline.
func (p *RenderPipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// Preset returns the shading preset this pipeline was built for.
func (p *RenderPipeline) Preset() shade.Pipeline { return p.preset }

// Table returns the binding table the pipeline was built from.
func (p *RenderPipeline) Table() layout.Layout { return p.table }

// Raw returns the underlying HAL render pipeline.
func (p *RenderPipeline) Raw() hal.RenderPipeline { return p.pipeline }

// CreateUniformBuffer encodes u per the binding table and uploads it to
// a new uniform buffer. The caller owns the buffer.
func (p *RenderPipeline) CreateUniformBuffer(u *shade.Uniforms) (hal.Buffer, error) {
	data, err := layout.EncodeUniforms(p.table, u)
	if err != nil {
		return nil, err
	}
	return p.createAndUploadBuffer(p.preset.Name()+"_uniforms", data,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
}

// CreateVertexBuffer encodes vertices per the binding table and uploads
// them to a new vertex buffer. The caller owns the buffer.
func (p *RenderPipeline) CreateVertexBuffer(verts []shade.VertexInput) (hal.Buffer, error) {
	data, err := layout.EncodeVertices(p.table, verts)
	if err != nil {
		return nil, err
	}
	return p.createAndUploadBuffer(p.preset.Name()+"_verts", data,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
}

// CreateBindGroup binds a uniform buffer at binding 0, matching the
// pipeline's bind group layout. The caller owns the bind group.
func (p *RenderPipeline) CreateBindGroup(uniformBuf hal.Buffer) (hal.BindGroup, error) {
	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  p.preset.Name() + "_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uint64(p.table.UniformSize),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	return bindGroup, nil
}

// RecordDraw records a draw of vertexCount vertices into an existing
// render pass. The render pass is owned by the caller.
func (p *RenderPipeline) RecordDraw(rp hal.RenderPassEncoder, vertBuf hal.Buffer, bindGroup hal.BindGroup, vertexCount uint32) {
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertBuf, 0)
	rp.Draw(vertexCount, 1, 0, 0)
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (p *RenderPipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
