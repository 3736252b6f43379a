// Package proc models external OS processes as opaque signal targets.
//
// Audio playback in readaloud is delegated to an external player binary, so
// the only control surface we have over a playing file is its OS process.
// This package abstracts that surface into a small action set (suspend,
// continue, terminate, probe) and leaves the mapping to native signals to
// per-platform files.
package proc

import "errors"

// Action is the abstract set of signals a controller may send to an
// external process. Platforms map each action to a native mechanism.
type Action int

const (
	// ActionSuspend pauses process execution (SIGSTOP on unix).
	ActionSuspend Action = iota
	// ActionContinue resumes a suspended process (SIGCONT on unix).
	ActionContinue
	// ActionTerminate asks the process to exit (SIGTERM on unix).
	ActionTerminate
	// ActionProbe checks for existence without side effects (signal 0).
	ActionProbe
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionSuspend:
		return "suspend"
	case ActionContinue:
		return "continue"
	case ActionTerminate:
		return "terminate"
	case ActionProbe:
		return "probe"
	default:
		return "unknown"
	}
}

var (
	// ErrProcessNotFound indicates the target process no longer exists.
	// Callers generally treat this as an expected outcome, not a failure.
	ErrProcessNotFound = errors.New("process not found")

	// ErrUnsupportedAction indicates the platform cannot deliver the action.
	ErrUnsupportedAction = errors.New("action not supported on this platform")
)

// Process is an opaque capability over an external OS process. The process
// may exit at any time; every method is best-effort.
type Process interface {
	// Signal delivers the given action to the process.
	Signal(Action) error

	// Alive reports whether the process still exists.
	Alive() bool

	// Pid returns the OS process identifier.
	Pid() int
}

// Handle is a Process backed by a real PID. It does not own the process:
// the PID is merely a transient reference sufficient to send signals.
type Handle struct {
	pid int
}

// FromPid wraps an existing PID, typically one found by discovery.
func FromPid(pid int) *Handle {
	return &Handle{pid: pid}
}

// Pid returns the OS process identifier.
func (h *Handle) Pid() int { return h.pid }

// Signal delivers the given action to the process.
func (h *Handle) Signal(a Action) error {
	return signalPid(h.pid, a)
}

// Alive reports whether the process still exists, using a no-op probe.
func (h *Handle) Alive() bool {
	return h.Signal(ActionProbe) == nil
}
