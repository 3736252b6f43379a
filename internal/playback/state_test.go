package playback

import "testing"

// TestStateTypeString tests the String() method for StateType.
func TestStateTypeString(t *testing.T) {
	tests := []struct {
		state    StateType
		expected string
	}{
		{StateIdle, "idle"},
		{StatePlaying, "playing"},
		{StatePaused, "paused"},
		{StateStopped, "stopped"},
		{StateFinished, "finished"},
		{StateType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("StateType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestStatePredicates tests Active, Terminal, CanPause and CanResume.
func TestStatePredicates(t *testing.T) {
	tests := []struct {
		state     StateType
		active    bool
		terminal  bool
		canPause  bool
		canResume bool
	}{
		{StateIdle, false, false, false, false},
		{StatePlaying, true, false, true, false},
		{StatePaused, true, false, false, true},
		{StateStopped, false, true, false, false},
		{StateFinished, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.Active(); got != tt.active {
				t.Errorf("Active() = %v, want %v", got, tt.active)
			}
			if got := tt.state.Terminal(); got != tt.terminal {
				t.Errorf("Terminal() = %v, want %v", got, tt.terminal)
			}
			if got := tt.state.CanPause(); got != tt.canPause {
				t.Errorf("CanPause() = %v, want %v", got, tt.canPause)
			}
			if got := tt.state.CanResume(); got != tt.canResume {
				t.Errorf("CanResume() = %v, want %v", got, tt.canResume)
			}
		})
	}
}

// TestStateMachineTransitions tests legal and illegal transitions.
func TestStateMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    StateType
		to      StateType
		allowed bool
	}{
		{"idle to playing", StateIdle, StatePlaying, true},
		{"idle to paused", StateIdle, StatePaused, false},
		{"playing to paused", StatePlaying, StatePaused, true},
		{"playing to stopped", StatePlaying, StateStopped, true},
		{"playing to finished", StatePlaying, StateFinished, true},
		{"paused to playing", StatePaused, StatePlaying, true},
		{"paused to stopped", StatePaused, StateStopped, true},
		{"paused to finished", StatePaused, StateFinished, true},
		{"stopped is terminal", StateStopped, StatePlaying, false},
		{"finished is terminal", StateFinished, StatePlaying, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewStateMachine()
			sm.current = tt.from
			if got := sm.Transition(tt.to); got != tt.allowed {
				t.Errorf("Transition(%v -> %v) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
			if tt.allowed && sm.Current() != tt.to {
				t.Errorf("Current() = %v after transition, want %v", sm.Current(), tt.to)
			}
			if !tt.allowed && sm.Current() != tt.from {
				t.Errorf("Current() = %v after rejected transition, want %v", sm.Current(), tt.from)
			}
		})
	}
}

// TestStateMachineReset verifies reset returns the machine to idle from any
// state.
func TestStateMachineReset(t *testing.T) {
	sm := NewStateMachine()
	sm.Transition(StatePlaying)
	sm.Transition(StateStopped)

	sm.Reset()
	if sm.Current() != StateIdle {
		t.Errorf("Current() = %v after reset, want idle", sm.Current())
	}
	if !sm.Transition(StatePlaying) {
		t.Error("cannot start a new session after reset")
	}
}
