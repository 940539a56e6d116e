package pulse

import "github.com/cogentcore/webgpu/wgpu"

// RenderPass is the open render pass of the current frame.
// It is only valid during the call to Dresser.Dress and must not be retained.
type RenderPass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

// Dresser issues the draw commands of a frame into an open render pass.
// Pipelines, buffers and bind groups are expected to be created once
// up front, using the format reported by View.Format.
type Dresser interface {
	Dress(pass RenderPass)
}

// DresserFunc adapts a plain function to the Dresser interface.
type DresserFunc func(pass RenderPass)

func (f DresserFunc) Dress(pass RenderPass) {
	f(pass)
}
