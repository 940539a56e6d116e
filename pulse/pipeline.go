package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

type PipelineOptions struct {
	Label  string
	Shader *wgpu.ShaderModule

	// Format of the color target, usually View.Format
	Format wgpu.TextureFormat

	VertexBuffers []wgpu.VertexBufferLayout

	FrontFace wgpu.FrontFace
	CullMode  wgpu.CullMode
}

// NewRenderPipeline builds a triangle list pipeline with a single color
// target that replaces the destination. The layout is derived from the
// shader, use GetBindGroupLayout to get the layouts of its bind groups.
func NewRenderPipeline(ctx *Context, opts PipelineOptions) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline",
		slog.String("label", opts.Label),
		slog.Any("format", opts.Format),
	)

	desc := &wgpu.RenderPipelineDescriptor{
		Label: opts.Label,
		Vertex: wgpu.VertexState{
			Module:     opts.Shader,
			EntryPoint: VertexEntryPoint,
			Buffers:    opts.VertexBuffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     opts.Shader,
			EntryPoint: FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    opts.Format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: opts.FrontFace,
			CullMode:  opts.CullMode,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := ctx.Device.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build pipeline %q: %w", opts.Label, err)
	}

	return pipeline, nil
}
