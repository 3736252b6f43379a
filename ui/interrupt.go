package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AudioControl is the slice of process discovery the interrupt overlay
// needs. proc.Finder satisfies it.
type AudioControl interface {
	Find() []int
	StopAll() bool
	PauseAll() int
	ResumeAll() int
}

// interruptKeyMap holds the overlay key bindings.
type interruptKeyMap struct {
	stop  key.Binding
	pause key.Binding
	quit  key.Binding
}

func newInterruptKeyMap() interruptKeyMap {
	return interruptKeyMap{
		stop: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "stop all audio"),
		),
		pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume all"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k interruptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.stop, k.pause, k.quit}
}

// FullHelp implements help.KeyMap.
func (k interruptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// InterruptModel is the voice-conversation interrupt overlay: a global
// kill switch for any audio player on the machine, whether or not this
// process started it.
type InterruptModel struct {
	audio AudioControl
	cfg   Config

	keys interruptKeyMap
	help help.Model

	players  int
	pids     []int
	paused   bool
	flash    string
	quitting bool
}

// NewInterruptModel creates the overlay over the given discovery control.
func NewInterruptModel(audio AudioControl, cfg Config) InterruptModel {
	return InterruptModel{
		audio: audio,
		cfg:   cfg,
		keys:  newInterruptKeyMap(),
		help:  help.New(),
	}
}

// NewInterruptProgram wraps the overlay in a Bubble Tea program.
func NewInterruptProgram(audio AudioControl, cfg Config) *tea.Program {
	return tea.NewProgram(NewInterruptModel(audio, cfg))
}

// Init starts the discovery poll.
func (m InterruptModel) Init() tea.Cmd {
	return tea.Batch(m.scanCmd(), tickCmd(m.cfg.pollInterval()))
}

// Update handles key presses and discovery results.
func (m InterruptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.stop):
			return m, m.stopAllCmd()

		case key.Matches(msg, m.keys.pause):
			if m.paused {
				return m, m.resumeAllCmd()
			}
			return m, m.pauseAllCmd()
		}

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.scanCmd(), tickCmd(m.cfg.pollInterval()))

	case activityMsg:
		m.players = msg.players
		m.pids = msg.pids
		return m, nil

	case stopAllDoneMsg:
		m.paused = false
		if msg.stopped {
			m.flash = "audio stopped"
		} else {
			m.flash = "no audio found"
		}
		return m, clearFlashCmd()

	case pauseAllDoneMsg:
		if msg.count > 0 {
			m.paused = true
			m.flash = fmt.Sprintf("paused %d player(s)", msg.count)
		} else {
			m.flash = "no audio found"
		}
		return m, clearFlashCmd()

	case resumeAllDoneMsg:
		m.paused = false
		if msg.count > 0 {
			m.flash = fmt.Sprintf("resumed %d player(s)", msg.count)
		} else {
			m.flash = "no audio found"
		}
		return m, clearFlashCmd()

	case clearFlashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

// View renders the overlay.
func (m InterruptModel) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("🗣 voice interrupt")

	var activity string
	switch {
	case m.paused:
		activity = pausedStyle.Render("‖ audio paused")
	case m.players > 0:
		activity = playingStyle.Render(fmt.Sprintf("● %d player(s) active", m.players))
	default:
		activity = subtleStyle.Render("○ listening")
	}

	stop := stopLabelStyle.Render("STOP")
	if m.flash == "audio stopped" {
		stop = stoppedLabelStyle.Render("STOPPED")
	}

	lines := []string{title, "", activity}
	if m.cfg.ShowPids && len(m.pids) > 0 {
		var pids []string
		for _, pid := range m.pids {
			pids = append(pids, strconv.Itoa(pid))
		}
		lines = append(lines, subtleStyle.Render("pids: "+strings.Join(pids, " ")))
	}
	lines = append(lines, "", stop)
	if m.flash != "" {
		lines = append(lines, "", subtleStyle.Render(m.flash))
	}
	lines = append(lines, "", m.help.View(m.keys))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

func (m InterruptModel) scanCmd() tea.Cmd {
	audio := m.audio
	return func() tea.Msg {
		pids := audio.Find()
		return activityMsg{players: len(pids), pids: pids}
	}
}

func (m InterruptModel) stopAllCmd() tea.Cmd {
	audio := m.audio
	return func() tea.Msg {
		return stopAllDoneMsg{stopped: audio.StopAll()}
	}
}

func (m InterruptModel) pauseAllCmd() tea.Cmd {
	audio := m.audio
	return func() tea.Msg {
		return pauseAllDoneMsg{count: audio.PauseAll()}
	}
}

func (m InterruptModel) resumeAllCmd() tea.Cmd {
	audio := m.audio
	return func() tea.Msg {
		return resumeAllDoneMsg{count: audio.ResumeAll()}
	}
}
