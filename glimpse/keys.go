package glimpse

type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF11
	KeyQ
	KeyR
)

var keyNames = map[Key]string{
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyF11:       "F11",
	KeyQ:         "Q",
	KeyR:         "R",
}

func (k Key) String() string {
	name, ok := keyNames[k]
	if !ok {
		return "Unknown"
	}

	return name
}
