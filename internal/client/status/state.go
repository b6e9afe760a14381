package status

// State is the view state of one activation. Exactly one is rendered at a time.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Settled reports whether the activation's single request has resolved.
func (s State) Settled() bool {
	return s == StateSuccess || s == StateError
}
