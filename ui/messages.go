package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colinusm/readaloud/internal/playback"
)

// Messages passed between commands and the models. The liveness poller is
// a timer on the event loop, so process-table facts always arrive as
// messages and never mutate a model from another goroutine.

// tickMsg drives the periodic liveness poll.
type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// stateMsg reports the controller state after a command or refresh.
type stateMsg struct {
	state playback.StateType
}

// playbackFailedMsg reports a failed spawn or signal.
type playbackFailedMsg struct {
	err error
}

// stoppedMsg reports a completed stop request; the panel quits on it.
type stoppedMsg struct{}

// activityMsg reports the player processes discovery can currently see.
type activityMsg struct {
	players int
	pids    []int
}

// stopAllDoneMsg reports the outcome of an emergency stop.
type stopAllDoneMsg struct {
	stopped bool
}

// pauseAllDoneMsg reports how many processes a broadcast pause touched.
type pauseAllDoneMsg struct {
	count int
}

// resumeAllDoneMsg reports how many processes a broadcast resume touched.
type resumeAllDoneMsg struct {
	count int
}

// clearFlashMsg clears a transient status line.
type clearFlashMsg struct{}

func clearFlashCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}
