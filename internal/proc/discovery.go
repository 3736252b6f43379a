package proc

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	ps "github.com/mitchellh/go-ps"
)

// Finder locates audio-player processes by executable name, independent of
// who started them. Everything here is inherently racy: a process can exit
// between discovery and signaling, so "not found when signaled" is an
// expected outcome and is silently ignored.
type Finder struct {
	names map[string]struct{}
	sweep bool
}

// NewFinder creates a Finder matching the given executable names
// (case-insensitive, a trailing ".exe" is ignored). When sweep is true,
// StopAll additionally issues a broadcast kill-by-name to catch players
// that appeared between discovery and termination.
func NewFinder(names []string, sweep bool) *Finder {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalizeExecutable(n)] = struct{}{}
	}
	return &Finder{names: set, sweep: sweep}
}

// Find lists the PIDs of live processes whose executable matches one of the
// configured names. It never fails: any process-table lookup error yields an
// empty result.
func (f *Finder) Find() []int {
	procs, err := ps.Processes()
	if err != nil {
		log.Debug("process listing failed", "error", err)
		return nil
	}

	var pids []int
	for _, p := range procs {
		if _, ok := f.names[normalizeExecutable(p.Executable())]; ok {
			pids = append(pids, p.Pid())
		}
	}
	return pids
}

// StopAll sends a terminate signal to every discovered player process,
// tolerating individual failures, then (when enabled) runs the broadcast
// sweep. It reports whether any attempt stopped something: a player that
// slipped past discovery but was caught by the sweep still counts.
func (f *Finder) StopAll() bool {
	stopped := f.signalAll(ActionTerminate) > 0
	if f.sweep && f.sweepTerminate() {
		stopped = true
	}
	return stopped
}

// PauseAll suspends every discovered player process and returns the number
// of processes affected.
func (f *Finder) PauseAll() int {
	return f.signalAll(ActionSuspend)
}

// ResumeAll continues every discovered player process and returns the
// number of processes affected.
func (f *Finder) ResumeAll() int {
	return f.signalAll(ActionContinue)
}

func (f *Finder) signalAll(a Action) int {
	count := 0
	for _, pid := range f.Find() {
		if err := signalPid(pid, a); err != nil {
			// Process disappeared between discovery and signaling.
			log.Debug("signal skipped", "pid", pid, "action", a, "error", err)
			continue
		}
		count++
	}
	return count
}

// sweepTerminate is the best-effort broadcast terminate: kill-by-name for
// every configured player. Non-atomic and racy on purpose; failures (no
// matching process, missing kill utility) are ignored. It reports whether
// any kill command matched something (the utilities exit non-zero when
// nothing matched).
func (f *Finder) sweepTerminate() bool {
	swept := false
	for name := range f.names {
		var cmd *exec.Cmd
		if runtime.GOOS == "windows" {
			cmd = exec.Command("taskkill", "/IM", name+".exe", "/F")
		} else {
			cmd = exec.Command("pkill", "-x", name)
		}
		if err := cmd.Run(); err != nil {
			log.Debug("sweep kill", "name", name, "error", err)
			continue
		}
		swept = true
	}
	return swept
}

func normalizeExecutable(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}
