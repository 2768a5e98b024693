package game

import "fmt"

// State is the session state that systems report and the scheduler honors.
type State int

const (
	// StateNone is reported by systems that do not influence the session.
	StateNone State = iota
	StatePlay
	StatePause
	// StateEnd is terminal for gameplay: only systems that run while paused
	// keep executing.
	StateEnd
	// StateClose is terminal: nothing executes any more.
	StateClose
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "NONE"
	case StatePlay:
		return "PLAY"
	case StatePause:
		return "PAUSE"
	case StateEnd:
		return "END"
	case StateClose:
		return "CLOSE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// next returns the state after a system reports reported while in s.
func (s State) next(reported State) State {
	switch reported {
	case StatePlay, StatePause:
		if s == StatePlay || s == StatePause {
			return reported
		}
	case StateEnd:
		if s != StateClose {
			return StateEnd
		}
	case StateClose:
		return StateClose
	}
	return s
}

// Status is the gameplay outcome exposed to the orchestration layer.
type Status int

const (
	StatusActive Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "GAME_OVER"
	}
	return "ACTIVE"
}
