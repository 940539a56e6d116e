package pulsetest

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/viewport/pulse"
)

// Surface is a pulse.Surface that records its configurations and the
// frames acquired from it.
type Surface struct {
	Caps pulse.Capabilities

	// all configurations passed to Configure, in order
	Configs []pulse.SurfaceConfig

	// Errors returned by the next calls to Acquire, one per call.
	// A nil entry acquires a frame.
	AcquireErrors []error

	// Returned by Configure if not nil
	ConfigureError error

	Frames []*Frame
}

// NewSurface creates a Surface supporting a single srgb format
// and fifo presentation.
func NewSurface() *Surface {
	return &Surface{
		Caps: pulse.Capabilities{
			Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb},
			PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo},
			AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
		},
	}
}

func (s *Surface) Capabilities() pulse.Capabilities {
	return s.Caps
}

func (s *Surface) Configure(config pulse.SurfaceConfig) error {
	if s.ConfigureError != nil {
		return s.ConfigureError
	}

	s.Configs = append(s.Configs, config)
	return nil
}

// LastConfig returns the latest configuration. It panics if the
// surface was never configured.
func (s *Surface) LastConfig() pulse.SurfaceConfig {
	return s.Configs[len(s.Configs)-1]
}

func (s *Surface) Acquire() (pulse.Frame, error) {
	if len(s.AcquireErrors) > 0 {
		err := s.AcquireErrors[0]
		s.AcquireErrors = s.AcquireErrors[1:]

		if err != nil {
			return nil, err
		}
	}

	frame := &Frame{}
	s.Frames = append(s.Frames, frame)

	return frame, nil
}

// Submitted counts the frames that were submitted.
func (s *Surface) Submitted() int {
	var count int
	for _, frame := range s.Frames {
		if frame.Submitted {
			count++
		}
	}

	return count
}

// Presented counts the frames that were presented.
func (s *Surface) Presented() int {
	var count int
	for _, frame := range s.Frames {
		if frame.Presented {
			count++
		}
	}

	return count
}

// Frame is a pulse.Frame that records into a Recorder.
type Frame struct {
	// Passes opened on this frame
	Passes []*Recorder

	ClearColors []wgpu.Color

	Submitted bool
	Presented bool
	Released  bool
}

func (f *Frame) BeginRenderPass(clear wgpu.Color) (pulse.RenderPass, error) {
	if len(f.Passes) > 0 {
		return nil, errors.New("render pass already open")
	}

	pass := &Recorder{}
	f.Passes = append(f.Passes, pass)
	f.ClearColors = append(f.ClearColors, clear)

	return pass, nil
}

// Pass returns the single recorder of this frame, or nil.
func (f *Frame) Pass() *Recorder {
	if len(f.Passes) == 0 {
		return nil
	}

	return f.Passes[0]
}

func (f *Frame) Submit() error {
	f.Submitted = true
	return nil
}

func (f *Frame) Present() {
	f.Presented = true
}

func (f *Frame) Release() {
	f.Released = true
}
