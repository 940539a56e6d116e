package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/viewport/glimpse"
	"github.com/oliverbestmann/viewport/pulse"
)

// SetupFunc builds the dresser of an application once the gpu is ready.
// Pipelines must be created for the given surface format.
type SetupFunc func(ctx *pulse.Context, format wgpu.TextureFormat) (pulse.Dresser, error)

type RunOptions struct {
	Options

	// Setup is the only field that is required.
	Setup SetupFunc

	// Optional, called once per frame before rendering.
	Update func() error
}

// Run opens a window, connects to the gpu and renders frames using the
// dresser returned by Setup until the window is closed or escape
// is pressed.
func Run(opts RunOptions) error {
	if opts.Setup == nil {
		return errors.New("Setup must not be nil")
	}

	opts.Options = opts.Options.withDefaults()

	if err := opts.validate(); err != nil {
		return err
	}

	level, _ := opts.logLevel()
	slog.SetLogLoggerLevel(level)

	presentModes, _ := opts.presentModes()

	// create a new window
	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:   opts.Width,
		Height:  opts.Height,
		Title:   opts.Title,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), nil)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	// initialize the view using the physical size of the window
	width, height := win.GetSize()

	view, err := pulse.NewView(ctx.PresentableSurface(), width, height, &pulse.ViewOptions{
		PresentModes: presentModes,
	})
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	view.ClearColor, _ = opts.clearColor()

	dresser, err := opts.Setup(ctx, view.Format())
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	loop := NewLoop(win, view, dresser)
	if opts.Update != nil {
		loop.Update = opts.Update
	}

	// render the first frame right away
	win.RequestRedraw()

	if err := win.Run(loop.Handle); err != nil {
		return fmt.Errorf("run event loop: %w", err)
	}

	frames := loop.Frames()
	slog.Info("Event loop finished",
		slog.Uint64("frames", frames.FrameCount),
		slog.Duration("maxFrameTime", frames.MaxDuration),
	)

	return nil
}
