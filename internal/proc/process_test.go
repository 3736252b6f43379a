package proc

import (
	"errors"
	"os/exec"
	"testing"
	"time"
)

// deadPid is far beyond any real PID range, so signaling it always reports
// "no such process".
const deadPid = 1 << 30

// TestActionString tests the String() method for Action.
func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionSuspend, "suspend"},
		{ActionContinue, "continue"},
		{ActionTerminate, "terminate"},
		{ActionProbe, "probe"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestSignalDeadPid verifies that signaling a PID that does not exist
// returns ErrProcessNotFound for every action and never panics.
func TestSignalDeadPid(t *testing.T) {
	h := FromPid(deadPid)

	for _, a := range []Action{ActionSuspend, ActionContinue, ActionTerminate, ActionProbe} {
		t.Run(a.String(), func(t *testing.T) {
			err := h.Signal(a)
			if !errors.Is(err, ErrProcessNotFound) {
				t.Errorf("Signal(%v) = %v, want ErrProcessNotFound", a, err)
			}
		})
	}

	if h.Alive() {
		t.Error("Alive() = true for a PID that cannot exist")
	}
}

// TestFromPid tests the PID accessor.
func TestFromPid(t *testing.T) {
	h := FromPid(42)
	if h.Pid() != 42 {
		t.Errorf("Pid() = %d, want 42", h.Pid())
	}
}

// TestSpawnAndTerminate spawns a real process, verifies liveness probing,
// terminates it, and confirms the handle eventually reports not-found.
func TestSpawnAndTerminate(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep binary not available")
	}

	h, err := Spawn("sleep", "30")
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	if !h.Alive() {
		t.Fatal("freshly spawned process reported not alive")
	}

	if err := h.Signal(ActionTerminate); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}

	// The background reaper releases the PID shortly after exit.
	deadline := time.Now().Add(5 * time.Second)
	for h.Alive() {
		if time.Now().After(deadline) {
			t.Fatal("process still alive after terminate")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// TestSpawnMissingBinary verifies that spawning a nonexistent binary fails
// without leaving a handle behind.
func TestSpawnMissingBinary(t *testing.T) {
	h, err := Spawn("definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error spawning missing binary")
	}
	if h != nil {
		t.Errorf("expected nil handle, got pid %d", h.Pid())
	}
}
