package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// RenderFrame renders exactly one frame: it acquires the next image of the
// surface, opens a single render pass that clears the image, lets the
// dresser record its draw commands, then submits and presents the result.
//
// If the image cannot be acquired, a *SurfaceError is returned and
// nothing is submitted or presented. Recovering from that error
// is up to the caller. Until the surface was configured with a valid
// size, ErrSurfaceOutdated is returned without acquiring an image.
func (v *View) RenderFrame(dresser Dresser) error {
	if !v.configured {
		return ErrSurfaceOutdated
	}

	frame, err := v.surface.Acquire()
	if err != nil {
		return ClassifySurfaceError(err)
	}

	defer frame.Release()

	pass, err := frame.BeginRenderPass(v.ClearColor.ToWGPU())
	if err != nil {
		return fmt.Errorf("begin render pass: %w", err)
	}

	scoped := &scopedPass{pass: pass}
	dresser.Dress(scoped)
	scoped.closed = true

	if err := frame.Submit(); err != nil {
		return fmt.Errorf("submit frame: %w", err)
	}

	frame.Present()

	return nil
}

// scopedPass guards a RenderPass against being used after the
// dresser returned.
type scopedPass struct {
	pass   RenderPass
	closed bool
}

func (p *scopedPass) check() {
	if p.closed {
		panic("pulse: render pass used after Dress returned")
	}
}

func (p *scopedPass) SetPipeline(pipeline *wgpu.RenderPipeline) {
	p.check()
	p.pass.SetPipeline(pipeline)
}

func (p *scopedPass) SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {
	p.check()
	p.pass.SetBindGroup(groupIndex, group, dynamicOffsets)
}

func (p *scopedPass) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64) {
	p.check()
	p.pass.SetVertexBuffer(slot, buffer, offset, size)
}

func (p *scopedPass) SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64) {
	p.check()
	p.pass.SetIndexBuffer(buffer, format, offset, size)
}

func (p *scopedPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.check()
	p.pass.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (p *scopedPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.check()
	p.pass.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}
