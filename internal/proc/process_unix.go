//go:build unix

package proc

import (
	"errors"

	"golang.org/x/sys/unix"
)

// signalPid maps the abstract action set onto POSIX signals. ESRCH is
// normalized to ErrProcessNotFound so callers never deal with raw errnos.
func signalPid(pid int, a Action) error {
	var sig unix.Signal
	switch a {
	case ActionSuspend:
		sig = unix.SIGSTOP
	case ActionContinue:
		sig = unix.SIGCONT
	case ActionTerminate:
		sig = unix.SIGTERM
	case ActionProbe:
		sig = 0
	default:
		return ErrUnsupportedAction
	}

	if err := unix.Kill(pid, sig); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return ErrProcessNotFound
		}
		return err
	}
	return nil
}
