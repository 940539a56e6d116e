// Package pulsetest provides recording fakes for the surface side of pulse,
// so frames can be rendered without a gpu.
package pulsetest

import (
	"github.com/cogentcore/webgpu/wgpu"
)

type OpKind int

const (
	OpSetPipeline OpKind = iota
	OpSetBindGroup
	OpSetVertexBuffer
	OpSetIndexBuffer
	OpDraw
	OpDrawIndexed
)

func (k OpKind) String() string {
	switch k {
	case OpSetPipeline:
		return "SetPipeline"
	case OpSetBindGroup:
		return "SetBindGroup"
	case OpSetVertexBuffer:
		return "SetVertexBuffer"
	case OpSetIndexBuffer:
		return "SetIndexBuffer"
	case OpDraw:
		return "Draw"
	case OpDrawIndexed:
		return "DrawIndexed"
	default:
		return "Unknown"
	}
}

// Op is a single recorded render pass command.
type Op struct {
	Kind OpKind

	Pipeline  *wgpu.RenderPipeline
	BindGroup *wgpu.BindGroup
	Buffer    *wgpu.Buffer

	// group index for SetBindGroup, slot for SetVertexBuffer
	Index       uint32
	IndexFormat wgpu.IndexFormat

	Draw        DrawCall
	DrawIndexed DrawIndexedCall
}

type DrawCall struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

type DrawIndexedCall struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32
}

// Recorder is a RenderPass that records all commands issued to it.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) SetPipeline(pipeline *wgpu.RenderPipeline) {
	r.Ops = append(r.Ops, Op{Kind: OpSetPipeline, Pipeline: pipeline})
}

func (r *Recorder) SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {
	r.Ops = append(r.Ops, Op{Kind: OpSetBindGroup, Index: groupIndex, BindGroup: group})
}

func (r *Recorder) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetVertexBuffer, Index: slot, Buffer: buffer})
}

func (r *Recorder) SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetIndexBuffer, Buffer: buffer, IndexFormat: format})
}

func (r *Recorder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.Ops = append(r.Ops, Op{Kind: OpDraw, Draw: DrawCall{
		VertexCount:   vertexCount,
		InstanceCount: instanceCount,
		FirstVertex:   firstVertex,
		FirstInstance: firstInstance,
	}})
}

func (r *Recorder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawIndexed, DrawIndexed: DrawIndexedCall{
		IndexCount:    indexCount,
		InstanceCount: instanceCount,
		FirstIndex:    firstIndex,
		BaseVertex:    baseVertex,
		FirstInstance: firstInstance,
	}})
}

// Kinds returns the kinds of all recorded commands in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, 0, len(r.Ops))
	for _, op := range r.Ops {
		kinds = append(kinds, op.Kind)
	}

	return kinds
}

// Draws returns all recorded non indexed draw calls.
func (r *Recorder) Draws() []DrawCall {
	var draws []DrawCall
	for _, op := range r.Ops {
		if op.Kind == OpDraw {
			draws = append(draws, op.Draw)
		}
	}

	return draws
}

// DrawsIndexed returns all recorded indexed draw calls.
func (r *Recorder) DrawsIndexed() []DrawIndexedCall {
	var draws []DrawIndexedCall
	for _, op := range r.Ops {
		if op.Kind == OpDrawIndexed {
			draws = append(draws, op.DrawIndexed)
		}
	}

	return draws
}
