package proc

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Spawn starts an external command detached from the caller's flow of
// control: it returns as soon as the process is running and never blocks on
// its completion. A background goroutine reaps the child so that a probe
// after natural exit correctly reports the process as gone.
func Spawn(name string, args ...string) (*Handle, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", name, err)
	}

	pid := cmd.Process.Pid
	log.Debug("spawned process", "command", name, "pid", pid)

	go func() {
		// Reap so the PID is released; the exit status itself is only
		// interesting for debugging.
		if err := cmd.Wait(); err != nil {
			log.Debug("process exited", "command", name, "pid", pid, "error", err)
		}
	}()

	return &Handle{pid: pid}, nil
}

// Self returns the path of the running executable, for re-exec style
// detached hand-offs (e.g. the hook entry point launching a reader).
func Self() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return exe, nil
}
