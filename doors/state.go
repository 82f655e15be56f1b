package doors

// State is where a door is in its open/close cycle.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Animating reports whether the state is transient.
func (s State) Animating() bool {
	return s == Opening || s == Closing
}

// Orientation is the axis of the wall a door sits in.
type Orientation int

const (
	// Horizontal doors sit in walls of constant Z and slide along +Z.
	Horizontal Orientation = iota
	// Vertical doors sit in walls of constant X and slide along +X.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}
