//go:build windows

package proc

import (
	"golang.org/x/sys/windows"
)

// signalPid implements the abstract action set on Windows. There is no
// native suspend/continue signal for foreign processes, so only terminate
// and probe are available.
func signalPid(pid int, a Action) error {
	switch a {
	case ActionTerminate:
		h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, uint32(pid))
		if err != nil {
			return ErrProcessNotFound
		}
		defer windows.CloseHandle(h) //nolint:errcheck
		if err := windows.TerminateProcess(h, 1); err != nil {
			return ErrProcessNotFound
		}
		return nil

	case ActionProbe:
		h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
		if err != nil {
			return ErrProcessNotFound
		}
		defer windows.CloseHandle(h) //nolint:errcheck

		var code uint32
		if err := windows.GetExitCodeProcess(h, &code); err != nil {
			return ErrProcessNotFound
		}
		if code != 259 { // STILL_ACTIVE
			return ErrProcessNotFound
		}
		return nil

	default:
		return ErrUnsupportedAction
	}
}
