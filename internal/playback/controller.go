// Package playback tracks the lifecycle of one externally spawned
// audio-player process and translates play/pause/stop commands into
// process signals.
package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/colinusm/readaloud/internal/proc"
)

// Launcher starts the external audio player for a file and hands back the
// resulting process capability.
type Launcher interface {
	Start(audioPath string) (proc.Process, error)
}

// Session tracks one audio-player process from spawn to release.
type Session struct {
	proc      proc.Process
	audioPath string
	startedAt time.Time
}

// AudioPath returns the audio file the session was started for.
func (s *Session) AudioPath() string { return s.audioPath }

// Pid returns the OS process identifier of the player.
func (s *Session) Pid() int { return s.proc.Pid() }

// Controller owns at most one playback session at a time and exposes
// start/pause/resume/stop over it. Commands from a single caller are
// strictly ordered by the mutex; liveness is observed by polling, not by
// waiting on the process.
type Controller struct {
	mu       sync.Mutex
	launcher Launcher
	machine  *StateMachine
	session  *Session
}

// NewController creates a controller that launches players through the
// given launcher.
func NewController(launcher Launcher) *Controller {
	return &Controller{
		launcher: launcher,
		machine:  NewStateMachine(),
	}
}

// Start spawns the external player for the given audio file and begins
// tracking it. The call returns as soon as the process is running.
//
// If a previous session is still active its tracking is dropped without
// killing the process, so two files may briefly play over each other.
// Callers that want exclusivity must Stop first.
func (c *Controller) Start(audioPath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.launcher.Start(audioPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	if old := c.session; old != nil && c.machine.Current().Active() {
		log.Warn("abandoning tracked session", "pid", old.Pid(), "file", old.audioPath)
	}

	c.session = &Session{
		proc:      p,
		audioPath: audioPath,
		startedAt: time.Now(),
	}
	c.machine.Reset()
	c.machine.Transition(StatePlaying)
	log.Debug("playback started", "pid", p.Pid(), "file", audioPath)
	return nil
}

// Pause suspends the player process. Legal only while playing. If the
// process turned out to be gone, the session moves to finished and
// proc.ErrProcessNotFound is returned.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.machine.Current().CanPause() {
		return ErrNotPlaying
	}
	if err := c.session.proc.Signal(proc.ActionSuspend); err != nil {
		if errors.Is(err, proc.ErrProcessNotFound) {
			c.machine.Transition(StateFinished)
		}
		return err
	}
	c.machine.Transition(StatePaused)
	return nil
}

// Resume continues a suspended player process. Legal only while paused.
// Not-found handling matches Pause.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.machine.Current().CanResume() {
		return ErrNotPaused
	}
	if err := c.session.proc.Signal(proc.ActionContinue); err != nil {
		if errors.Is(err, proc.ErrProcessNotFound) {
			c.machine.Transition(StateFinished)
		}
		return err
	}
	c.machine.Transition(StatePlaying)
	return nil
}

// Stop terminates the player process and releases the handle, reporting
// whether a live session was actually stopped. Stop is idempotent: calling
// it with no active session is a no-op returning (false, nil). A process
// that already exited still counts as stopped.
func (c *Controller) Stop() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.machine.Current().Active() {
		return false, nil
	}

	err := c.session.proc.Signal(proc.ActionTerminate)
	c.machine.Transition(StateStopped)
	c.session = nil

	if err != nil && !errors.Is(err, proc.ErrProcessNotFound) {
		return false, fmt.Errorf("terminate player: %w", err)
	}
	return true, nil
}

// Refresh probes the player process and records natural completion:
// a playing or paused session whose process is gone becomes finished.
// It returns the (possibly updated) state.
func (c *Controller) Refresh() StateType {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.machine.Current()
	if !state.Active() {
		return state
	}
	if !c.session.proc.Alive() {
		c.machine.Transition(StateFinished)
		log.Debug("playback finished", "file", c.session.audioPath)
		return StateFinished
	}
	return state
}

// State returns the current session state without probing.
func (c *Controller) State() StateType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Current()
}

// AudioPath returns the audio file of the tracked session, or "" when no
// session has been started.
func (c *Controller) AudioPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.audioPath
}

// Watch polls liveness on the given interval and delivers state changes on
// the returned channel. The channel closes once the session reaches a
// terminal state or the context is canceled. Intended for consumers without
// their own event loop; TUI front-ends poll Refresh from a timer instead.
func (c *Controller) Watch(ctx context.Context, interval time.Duration) <-chan StateType {
	ch := make(chan StateType, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := c.State()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				state := c.Refresh()
				if state != last {
					last = state
					select {
					case ch <- state:
					case <-ctx.Done():
						return
					}
				}
				if state.Terminal() {
					return
				}
			}
		}
	}()
	return ch
}
