package orion

import (
	"errors"
	"log/slog"

	"github.com/oliverbestmann/viewport/glimpse"
	"github.com/oliverbestmann/viewport/pulse"
)

// Redrawer schedules the next redraw of a window.
type Redrawer interface {
	RequestRedraw()
}

// Loop reacts to window events: it keeps the View sized to the window,
// renders a frame for every redraw request and recovers from surface
// errors where possible.
type Loop struct {
	window  Redrawer
	view    *pulse.View
	dresser pulse.Dresser

	// Update is called once per redraw before the frame is rendered.
	// Errors are logged, the frame is rendered anyways.
	Update func() error

	state  State
	frames FrameTimes
}

func NewLoop(window Redrawer, view *pulse.View, dresser pulse.Dresser) *Loop {
	return &Loop{
		window:  window,
		view:    view,
		dresser: dresser,
		Update:  func() error { return nil },
	}
}

func (l *Loop) State() State {
	return l.state
}

// Frames returns statistics over the frames rendered so far.
func (l *Loop) Frames() FrameTimes {
	return l.frames
}

// Handle processes a single window event. It returns glimpse.Exit once
// the loop is Terminating.
func (l *Loop) Handle(ev glimpse.Event) glimpse.ControlFlow {
	if l.state == Terminating {
		return glimpse.Exit
	}

	switch ev := ev.(type) {
	case glimpse.ResizeEvent:
		if err := l.view.Resize(ev.Width, ev.Height); err != nil {
			slog.Warn("Failed to resize surface", slog.Any("err", err))
		}

	case glimpse.CloseRequestedEvent:
		l.terminate("close requested")

	case glimpse.KeyEvent:
		if ev.Key == glimpse.KeyEscape && ev.Action == glimpse.KeyPressed {
			l.terminate("escape pressed")
		}

	case glimpse.RedrawRequestedEvent:
		l.redraw()

	case glimpse.EventsClearedEvent:
		l.window.RequestRedraw()
	}

	if l.state == Terminating {
		return glimpse.Exit
	}

	return glimpse.Continue
}

func (l *Loop) terminate(reason string) {
	slog.Info("Terminating", slog.String("reason", reason))
	l.state = Terminating
}

func (l *Loop) redraw() {
	if l.Update != nil {
		if err := l.Update(); err != nil {
			slog.Warn("Update failed", slog.Any("err", err))
		}
	}

	err := l.view.RenderFrame(l.dresser)

	switch {
	case err == nil:
		if l.frames.Tick() {
			slog.Debug("Frame statistics",
				slog.Uint64("frames", l.frames.FrameCount),
				slog.Float64("fps", l.frames.FPS()),
				slog.Duration("avg", l.frames.AverageDuration),
				slog.Duration("max", l.frames.MaxDuration),
			)
		}

	case errors.Is(err, pulse.ErrSurfaceLost):
		slog.Info("Surface lost, reconfigure")

		if err := l.view.Reconfigure(); err != nil {
			slog.Warn("Failed to reconfigure surface", slog.Any("err", err))
		}

	case errors.Is(err, pulse.ErrOutOfMemory):
		slog.Error("Out of memory", slog.Any("err", err))
		l.terminate("out of memory")

	default:
		// outdated and timeout usually resolve themselves within a few frames
		slog.Warn("Failed to render frame", slog.Any("err", err))
	}
}
