package pulse

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfig is the configuration of a presentable surface.
type SurfaceConfig struct {
	Format      wgpu.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode
}

// Capabilities lists what a surface supports on the current adapter.
type Capabilities struct {
	Formats      []wgpu.TextureFormat
	PresentModes []wgpu.PresentMode
	AlphaModes   []wgpu.CompositeAlphaMode
}

// Surface is the presentable target a View renders into.
type Surface interface {
	Capabilities() Capabilities

	// Configure (re)configures the surface in place.
	Configure(config SurfaceConfig) error

	// Acquire returns the next drawable image of the surface.
	Acquire() (Frame, error)
}

// Frame is one acquired drawable image together with
// the command encoder recording into it.
type Frame interface {
	// BeginRenderPass opens the single render pass of this frame
	// on the acquired image, clearing it to the given color.
	BeginRenderPass(clear wgpu.Color) (RenderPass, error)

	// Submit ends the render pass, finishes recording and submits
	// the command buffer to the queue.
	Submit() error

	// Present shows the acquired image.
	Present()

	// Release frees everything still held by the frame. Calling Release
	// after Present must be safe.
	Release()
}

type gpuSurface struct {
	ctx    *Context
	config wgpu.SurfaceConfiguration
}

func (s *gpuSurface) Capabilities() Capabilities {
	caps := s.ctx.Surface.GetCapabilities(s.ctx.Adapter)

	return Capabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

func (s *gpuSurface) Configure(config SurfaceConfig) error {
	s.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      config.Format,
		Width:       config.Width,
		Height:      config.Height,
		PresentMode: config.PresentMode,
		AlphaMode:   config.AlphaMode,
	}

	s.ctx.Surface.Configure(s.ctx.Adapter, s.ctx.Device, &s.config)

	return nil
}

func (s *gpuSurface) Acquire() (Frame, error) {
	texture, err := s.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return nil, err
	}

	guard := NewReleaseGuard(texture)
	defer guard.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}

	viewGuard := NewReleaseGuard(view)
	defer viewGuard.Release()

	encoder, err := s.ctx.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	guard.Keep()
	viewGuard.Keep()

	return &gpuFrame{
		ctx:     s.ctx,
		texture: texture,
		view:    view,
		encoder: encoder,
	}, nil
}

type gpuFrame struct {
	ctx     *Context
	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	pass    *wgpu.RenderPassEncoder

	presented bool
}

func (f *gpuFrame) BeginRenderPass(clear wgpu.Color) (RenderPass, error) {
	if f.pass != nil {
		return nil, errors.New("render pass already open")
	}

	f.pass = f.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       f.view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})

	return encoderPass{enc: f.pass}, nil
}

func (f *gpuFrame) Submit() error {
	if f.pass != nil {
		pass := f.pass
		f.pass = nil

		err := pass.End()

		// must be released before the encoder is finished
		pass.Release()

		if err != nil {
			return fmt.Errorf("end render pass: %w", err)
		}
	}

	buf, err := f.encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "Render Commands"})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	f.ctx.Queue.Submit(buf)

	return nil
}

func (f *gpuFrame) Present() {
	f.ctx.Surface.Present()
	f.presented = true
}

func (f *gpuFrame) Release() {
	if f.pass != nil {
		f.pass.Release()
		f.pass = nil
	}

	if f.encoder != nil {
		f.encoder.Release()
		f.encoder = nil
	}

	if f.view != nil {
		f.view.Release()
		f.view = nil
	}

	// we do not need to release the surface texture if present was successful
	if f.texture != nil && !f.presented {
		f.texture.Release()
	}

	f.texture = nil
}

// encoderPass forwards the RenderPass operations to a wgpu.RenderPassEncoder.
type encoderPass struct {
	enc *wgpu.RenderPassEncoder
}

func (p encoderPass) SetPipeline(pipeline *wgpu.RenderPipeline) {
	p.enc.SetPipeline(pipeline)
}

func (p encoderPass) SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {
	p.enc.SetBindGroup(groupIndex, group, dynamicOffsets)
}

func (p encoderPass) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64) {
	p.enc.SetVertexBuffer(slot, buffer, offset, size)
}

func (p encoderPass) SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64) {
	p.enc.SetIndexBuffer(buffer, format, offset, size)
}

func (p encoderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.enc.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (p encoderPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.enc.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}
