package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

var ErrNoAdapter = errors.New("no compatible gpu adapter")
var ErrNoDevice = errors.New("no compatible gpu device")

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Queue, Surface and active Adapter.
// A Context is created once at startup and released at exit.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

type ContextOptions struct {
	// Do not require the SPIR-V shader passthrough feature. Without it,
	// shader modules are still accepted as SPIR-V or WGSL, but are
	// translated by the driver instead of passed through.
	DisableSpirvPassthrough bool

	// Additional features to require from the device.
	Features []wgpu.FeatureName
}

func (opts *ContextOptions) requiredFeatures() []wgpu.FeatureName {
	var features []wgpu.FeatureName

	passthrough := !opts.DisableSpirvPassthrough && os.Getenv("PULSE_SPIRV_PASSTHROUGH") != "0"
	if passthrough {
		features = append(features, wgpu.FeatureName(wgpu.NativeFeatureSpirvShaderPassthrough))
	}

	return append(features, opts.Features...)
}

// New opens a connection to the gpu that can render to the surface
// described by sd. Adapter and device negotiation happens synchronously.
func New(sd *wgpu.SurfaceDescriptor, opts *ContextOptions) (st *Context, err error) {
	if opts == nil {
		opts = &ContextOptions{}
	}

	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance, this includes all available backends
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	adapters := instance.EnumerateAdapters(nil)
	slog.Info("Enumerated gpu adapters", slog.Int("count", len(adapters)))

	for _, adapter := range adapters {
		adapter.Release()
	}

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	if st.Adapter == nil {
		return st, ErrNoAdapter
	}

	features := opts.requiredFeatures()
	for _, feature := range features {
		if !st.Adapter.HasFeature(feature) {
			slog.Warn("Adapter does not report required feature", slog.Any("feature", feature))
		}
	}

	st.Device, err = st.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Device",
		RequiredFeatures: features,
	})

	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	st.Queue = st.Device.GetQueue()

	return st, nil
}

// PresentableSurface returns the Surface of this Context as a pulse.Surface
// that can be used to create a View.
func (d *Context) PresentableSurface() Surface {
	return &gpuSurface{ctx: d}
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
