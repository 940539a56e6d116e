package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// NewVertexBuffer uploads the vertices into a new vertex buffer.
func NewVertexBuffer[T any](ctx *Context, label string, vertices []T) (*wgpu.Buffer, error) {
	return newBufferInit(ctx, label, wgpu.ToBytes(vertices), wgpu.BufferUsageVertex)
}

// NewIndexBuffer uploads 16 bit indices into a new index buffer.
// Bind it using wgpu.IndexFormatUint16.
func NewIndexBuffer(ctx *Context, label string, indices []uint16) (*wgpu.Buffer, error) {
	// buffer sizes must be a multiple of 4
	if len(indices)%2 != 0 {
		indices = append(indices[:len(indices):len(indices)], 0)
	}

	return newBufferInit(ctx, label, wgpu.ToBytes(indices), wgpu.BufferUsageIndex)
}

func newBufferInit(ctx *Context, label string, contents []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	buf, err := ctx.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create and init buffer label=%q: %w", label, err)
	}

	return buf, nil
}
