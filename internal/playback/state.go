package playback

// StateType represents the state of a playback session.
type StateType int

const (
	// StateIdle indicates no session is being tracked.
	StateIdle StateType = iota
	// StatePlaying indicates the player process is running audibly.
	StatePlaying
	// StatePaused indicates the player process is suspended.
	StatePaused
	// StateStopped indicates playback was terminated by a caller. Terminal.
	StateStopped
	// StateFinished indicates the player process exited on its own. Terminal.
	StateFinished
)

// String returns the string representation of the state.
func (s StateType) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Active returns true while a live player process is being tracked.
func (s StateType) Active() bool {
	return s == StatePlaying || s == StatePaused
}

// Terminal returns true for states a session never leaves.
func (s StateType) Terminal() bool {
	return s == StateStopped || s == StateFinished
}

// CanPause returns true if a pause command is legal in this state.
func (s StateType) CanPause() bool {
	return s == StatePlaying
}

// CanResume returns true if a resume command is legal in this state.
func (s StateType) CanResume() bool {
	return s == StatePaused
}

// StateMachine guards the legal transitions of a playback session.
type StateMachine struct {
	current     StateType
	transitions map[StateType][]StateType
}

// NewStateMachine creates a state machine in the idle state.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		current: StateIdle,
		transitions: map[StateType][]StateType{
			StateIdle:    {StatePlaying},
			StatePlaying: {StatePaused, StateStopped, StateFinished},
			StatePaused:  {StatePlaying, StateStopped, StateFinished},
			// Stopped and Finished are terminal; a new session resets.
			StateStopped:  {},
			StateFinished: {},
		},
	}
}

// Transition attempts to move to the given state and reports whether the
// move was legal.
func (sm *StateMachine) Transition(to StateType) bool {
	for _, next := range sm.transitions[sm.current] {
		if next == to {
			sm.current = to
			return true
		}
	}
	return false
}

// Current returns the current state.
func (sm *StateMachine) Current() StateType {
	return sm.current
}

// Reset returns the machine to idle. Used when a session's handle is
// released and a fresh session may begin.
func (sm *StateMachine) Reset() {
	sm.current = StateIdle
}
