package console

// State is the visibility of the console. There is no intermediate state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Alpha is the opacity of the console view.
func (s State) Alpha() float64 {
	if s == Open {
		return 1
	}
	return 0
}

// Interactable reports whether the console accepts input.
func (s State) Interactable() bool { return s == Open }

// BlocksRaycasts reports whether the console captures pointer hits.
func (s State) BlocksRaycasts() bool { return s == Open }
