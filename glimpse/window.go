package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is a native window that a surface can be created for.
type Window interface {
	// GetSize returns the size of the drawable area in physical pixels.
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// RequestRedraw schedules a RedrawRequestedEvent for the
	// next iteration of the event loop.
	RequestRedraw()

	// Run pumps window events into handler until it returns Exit.
	Run(handler Handler) error

	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// Profile enables profiling for the lifetime of the window,
	// "cpu" or "mem". Profiling is disabled if empty.
	Profile string
}
