package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/colinusm/readaloud/internal/playback"
	"github.com/colinusm/readaloud/internal/proc"
)

const maxTitleWidth = 40

// controlKeyMap holds the control panel key bindings.
type controlKeyMap struct {
	toggle key.Binding
	stop   key.Binding
	replay key.Binding
	quit   key.Binding
}

func newControlKeyMap() controlKeyMap {
	return controlKeyMap{
		toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
			key.WithDisabled(),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k controlKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.stop, k.replay, k.quit}
}

// FullHelp implements help.KeyMap.
func (k controlKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ControlModel is the per-file playback control panel: the TUI counterpart
// of a tiny always-on-top window with pause/stop buttons.
type ControlModel struct {
	controller  *playback.Controller
	audioPath   string
	displayName string
	cfg         Config

	keys controlKeyMap
	help help.Model
	spin spinner.Model

	state    playback.StateType
	err      error
	quitting bool
}

// NewControlModel creates the control panel for one audio file. Playback
// starts as soon as the program runs.
func NewControlModel(controller *playback.Controller, audioPath, displayName string, cfg Config) ControlModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = playingStyle

	return ControlModel{
		controller:  controller,
		audioPath:   audioPath,
		displayName: displayName,
		cfg:         cfg,
		keys:        newControlKeyMap(),
		help:        help.New(),
		spin:        s,
		state:       playback.StateIdle,
	}
}

// NewControlProgram wraps the control panel in a Bubble Tea program.
func NewControlProgram(controller *playback.Controller, audioPath, displayName string, cfg Config) *tea.Program {
	return tea.NewProgram(NewControlModel(controller, audioPath, displayName, cfg))
}

// Init starts playback and the liveness poll.
func (m ControlModel) Init() tea.Cmd {
	return tea.Batch(m.startCmd(), m.spin.Tick, tickCmd(m.cfg.pollInterval()))
}

// Update handles key presses and poll results.
func (m ControlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			// Closing the panel stops playback, like closing the window.
			m.quitting = true
			return m, tea.Batch(m.stopCmd(), tea.Quit)

		case key.Matches(msg, m.keys.toggle):
			return m, m.toggleCmd()

		case key.Matches(msg, m.keys.stop):
			m.quitting = true
			return m, tea.Batch(m.stopCmd(), tea.Quit)

		case key.Matches(msg, m.keys.replay):
			return m, m.startCmd()
		}

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.refreshCmd(), tickCmd(m.cfg.pollInterval()))

	case stateMsg:
		m.state = msg.state
		m.syncKeys()
		return m, nil

	case playbackFailedMsg:
		m.err = msg.err
		m.syncKeys()
		return m, nil

	case spinner.TickMsg:
		if m.state != playback.StatePlaying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the panel.
func (m ControlModel) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("♪ " + truncate.StringWithTail(m.displayName, maxTitleWidth, "…"))

	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render("playback failed: " + m.err.Error())
	case m.state == playback.StatePlaying:
		status = m.spin.View() + playingStyle.Render(" playing")
	case m.state == playback.StatePaused:
		status = pausedStyle.Render("‖ paused")
	case m.state == playback.StateFinished:
		status = finishedStyle.Render("✓ finished")
	case m.state == playback.StateStopped:
		status = subtleStyle.Render("■ stopped")
	default:
		status = subtleStyle.Render("starting…")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		status,
		"",
		m.help.View(m.keys),
	)
	return panelStyle.Render(body) + "\n"
}

// syncKeys enables the bindings legal in the current state, so the help
// line always reflects what a press would actually do.
func (m *ControlModel) syncKeys() {
	m.keys.toggle.SetEnabled(m.err == nil && m.state.Active())
	m.keys.stop.SetEnabled(m.err == nil && m.state.Active())
	m.keys.replay.SetEnabled(m.err == nil && m.state.Terminal())
}

func (m ControlModel) startCmd() tea.Cmd {
	controller, path := m.controller, m.audioPath
	return func() tea.Msg {
		if err := controller.Start(path); err != nil {
			return playbackFailedMsg{err: err}
		}
		return stateMsg{state: controller.State()}
	}
}

func (m ControlModel) toggleCmd() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		var err error
		switch controller.State() {
		case playback.StatePlaying:
			err = controller.Pause()
		case playback.StatePaused:
			err = controller.Resume()
		default:
			return stateMsg{state: controller.State()}
		}
		// A vanished process is natural completion, not a failure.
		if err != nil && !errors.Is(err, proc.ErrProcessNotFound) &&
			!errors.Is(err, playback.ErrNotPlaying) && !errors.Is(err, playback.ErrNotPaused) {
			return playbackFailedMsg{err: err}
		}
		return stateMsg{state: controller.State()}
	}
}

func (m ControlModel) stopCmd() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		_, _ = controller.Stop()
		return stoppedMsg{}
	}
}

func (m ControlModel) refreshCmd() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		return stateMsg{state: controller.Refresh()}
	}
}
