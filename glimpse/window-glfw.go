package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeyKPEnter:   KeyEnter,
	glfw.KeySpace:     KeySpace,
	glfw.KeyTab:       KeyTab,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyRight:     KeyRight,
	glfw.KeyUp:        KeyUp,
	glfw.KeyDown:      KeyDown,
	glfw.KeyF11:       KeyF11,
	glfw.KeyQ:         KeyQ,
	glfw.KeyR:         KeyR,
}

type glfwWindow struct {
	win  *glfw.Window
	prof interface{ Stop() }

	// events collected by the glfw callbacks during the last poll
	queue []Event

	redrawRequested bool
}

func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	switch opts.Profile {
	case "":
	case "cpu":
		w.prof = profile.Start(profile.CPUProfile)
	case "mem":
		w.prof = profile.Start(profile.MemProfile)
	default:
		slog.Warn("Unknown profile mode, profiling disabled", slog.String("profile", opts.Profile))
	}

	w.configureCallbacks()

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) RequestRedraw() {
	g.redrawRequested = true
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler Handler) error {
	for {
		if g.redrawRequested {
			glfw.PollEvents()
		} else {
			// nothing to draw, sleep until something happens
			glfw.WaitEvents()
		}

		queue := g.queue
		g.queue = nil

		for _, ev := range queue {
			if handler(ev) == Exit {
				return nil
			}
		}

		if g.redrawRequested {
			g.redrawRequested = false

			if handler(RedrawRequestedEvent{}) == Exit {
				return nil
			}
		}

		if handler(EventsClearedEvent{}) == Exit {
			return nil
		}
	}
}

func (g *glfwWindow) push(ev Event) {
	g.queue = append(g.queue, ev)
}

func (g *glfwWindow) configureCallbacks() {
	// the framebuffer size is in physical pixels and also
	// changes if the window moves to a screen with a different scale
	g.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		g.push(ResizeEvent{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))})
	})

	g.win.SetCloseCallback(func(win *glfw.Window) {
		// the handler decides if the window closes
		win.SetShouldClose(false)
		g.push(CloseRequestedEvent{})
	})

	g.win.SetRefreshCallback(func(_win *glfw.Window) {
		g.RequestRedraw()
	})

	g.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			g.push(KeyEvent{Key: key, Action: KeyPressed})

		case glfw.Release:
			g.push(KeyEvent{Key: key, Action: KeyReleased})
		}
	})
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug("Unknown key code", slog.Int("key", int(glfwKey)))
	}

	return
}
