package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

type ViewOptions struct {
	// Present modes in order of preference. The first one supported by
	// the surface is used, otherwise the first mode the surface reports.
	PresentModes []wgpu.PresentMode
}

// View binds a Surface to its configuration. It tracks the size of the
// window and reconfigures the surface whenever that size changes.
type View struct {
	surface Surface
	config  SurfaceConfig

	// true once the surface was configured with a valid size
	configured bool

	// Color the surface is cleared to at the start of every frame.
	ClearColor Color
}

func NewView(surface Surface, width, height uint32, opts *ViewOptions) (*View, error) {
	if opts == nil {
		opts = &ViewOptions{}
	}

	caps := surface.Capabilities()

	// Print the available render formats
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format, err := SelectSurfaceFormat(caps.Formats)
	if err != nil {
		return nil, err
	}

	v := &View{
		surface:    surface,
		ClearColor: DefaultClearColor,
		config: SurfaceConfig{
			Format:      format,
			PresentMode: selectPresentMode(caps.PresentModes, opts.PresentModes),
		},
	}

	if len(caps.AlphaModes) > 0 {
		v.config.AlphaMode = caps.AlphaModes[0]
	}

	slog.Info("Selected surface format",
		slog.Any("format", v.config.Format),
		slog.Any("presentMode", v.config.PresentMode),
	)

	if err := v.Resize(width, height); err != nil {
		return nil, err
	}

	return v, nil
}

func selectPresentMode(supported, preferred []wgpu.PresentMode) wgpu.PresentMode {
	for _, mode := range preferred {
		if slices.Contains(supported, mode) {
			return mode
		}
	}

	if len(supported) > 0 {
		return supported[0]
	}

	return wgpu.PresentModeFifo
}

// Resize reconfigures the surface with the given size. A size with
// a zero dimension is ignored and the previous configuration stays active.
// Some platforms report such a size while the window is minimized.
func (v *View) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		slog.Debug("Ignore resize to empty surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		return nil
	}

	config := v.config
	config.Width = width
	config.Height = height

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	if err := v.surface.Configure(config); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}

	v.config = config
	v.configured = true

	return nil
}

// Reconfigure configures the surface again using the last valid size.
// This recovers from a lost surface.
func (v *View) Reconfigure() error {
	if !v.configured {
		return nil
	}

	if err := v.surface.Configure(v.config); err != nil {
		return fmt.Errorf("reconfigure surface: %w", err)
	}

	return nil
}

// Format returns the texture format of the surface. Pipelines rendering
// to this view must use this format for their color target.
func (v *View) Format() wgpu.TextureFormat {
	return v.config.Format
}

// Size returns the last valid size of the surface.
func (v *View) Size() (width, height uint32) {
	return v.config.Width, v.config.Height
}

func (v *View) Config() SurfaceConfig {
	return v.config
}
