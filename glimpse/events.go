package glimpse

import "fmt"

// Event is one of the events emitted by Window.Run.
type Event interface {
	event()
}

// ResizeEvent reports a new size of the drawable area in physical pixels.
// Both dimensions may be zero while the window is minimized.
type ResizeEvent struct {
	Width, Height uint32
}

// CloseRequestedEvent is emitted when the user asks to close the window.
// The window stays open until the handler returns Exit.
type CloseRequestedEvent struct{}

type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// RedrawRequestedEvent is emitted once after Window.RequestRedraw was called.
type RedrawRequestedEvent struct{}

// EventsClearedEvent is emitted after all pending events were handled.
type EventsClearedEvent struct{}

func (ResizeEvent) event()          {}
func (CloseRequestedEvent) event()  {}
func (KeyEvent) event()             {}
func (RedrawRequestedEvent) event() {}
func (EventsClearedEvent) event()   {}

func (ev ResizeEvent) String() string {
	return fmt.Sprintf("Resize(%dx%d)", ev.Width, ev.Height)
}

func (ev KeyEvent) String() string {
	return fmt.Sprintf("Key(%s, %s)", ev.Key, ev.Action)
}

type KeyAction uint8

const (
	KeyPressed KeyAction = iota
	KeyReleased
)

func (a KeyAction) String() string {
	if a == KeyPressed {
		return "Pressed"
	}

	return "Released"
}

// ControlFlow is returned by a Handler to tell the window
// whether to keep running.
type ControlFlow uint8

const (
	Continue ControlFlow = iota
	Exit
)

func (c ControlFlow) String() string {
	if c == Exit {
		return "Exit"
	}

	return "Continue"
}

type Handler func(ev Event) ControlFlow
