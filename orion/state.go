package orion

// State of a Loop. A Loop starts Running and ends Terminating,
// there is no way back.
type State uint8

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Terminating:
		return "Terminating"
	default:
		return "Unknown"
	}
}
