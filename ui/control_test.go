package ui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colinusm/readaloud/internal/playback"
	"github.com/colinusm/readaloud/internal/proc"
)

// stubProcess is a minimal live proc.Process.
type stubProcess struct {
	mu   sync.Mutex
	pid  int
	gone bool
}

func (p *stubProcess) Signal(proc.Action) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gone {
		return proc.ErrProcessNotFound
	}
	return nil
}

func (p *stubProcess) Alive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.gone
}

func (p *stubProcess) Pid() int { return p.pid }

type stubLauncher struct{}

func (stubLauncher) Start(string) (proc.Process, error) {
	return &stubProcess{pid: 1234}, nil
}

func newTestControl() ControlModel {
	controller := playback.NewController(stubLauncher{})
	return NewControlModel(controller, "/tmp/notes.mp3", "notes.mp3", Config{})
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs a command chain to completion, feeding each message back into
// the model. Batches are unpacked and their commands run in order.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(t, m, c)
		}
		return m
	}
	m, next := m.Update(msg)
	return drain(t, m, next)
}

// TestControlStartThenToggle walks the panel through start, pause and
// resume via key presses.
func TestControlStartThenToggle(t *testing.T) {
	m := newTestControl()

	model := drain(t, m, m.startCmd())
	cm := model.(ControlModel)
	if cm.state != playback.StatePlaying {
		t.Fatalf("state = %v after start, want playing", cm.state)
	}

	// Space pauses.
	model, cmd := cm.Update(keyMsg(" "))
	model = drain(t, model, cmd)
	cm = model.(ControlModel)
	if cm.state != playback.StatePaused {
		t.Fatalf("state = %v after space, want paused", cm.state)
	}

	// Space again resumes.
	model, cmd = cm.Update(keyMsg(" "))
	model = drain(t, model, cmd)
	cm = model.(ControlModel)
	if cm.state != playback.StatePlaying {
		t.Fatalf("state = %v after second space, want playing", cm.state)
	}
}

// TestControlStopQuits verifies the stop key stops playback and quits.
func TestControlStopQuits(t *testing.T) {
	m := newTestControl()
	model := drain(t, m, m.startCmd())
	cm := model.(ControlModel)

	model, cmd := cm.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("stop key produced no command")
	}
	model = drain(t, model, cmd)
	cm = model.(ControlModel)

	if !cm.quitting {
		t.Error("panel not quitting after stop key")
	}
	if cm.controller.State() != playback.StateStopped {
		t.Errorf("controller state = %v, want stopped", cm.controller.State())
	}
}

// TestControlQuitStopsPlayback verifies closing the panel with the quit key
// also terminates the player, like closing the window would.
func TestControlQuitStopsPlayback(t *testing.T) {
	m := newTestControl()
	model := drain(t, m, m.startCmd())
	cm := model.(ControlModel)

	model, cmd := cm.Update(keyMsg("q"))
	model = drain(t, model, cmd)
	cm = model.(ControlModel)

	if !cm.quitting {
		t.Error("panel not quitting after quit key")
	}
	if cm.controller.State() != playback.StateStopped {
		t.Errorf("controller state = %v, want stopped", cm.controller.State())
	}
	if cm.View() != "" {
		t.Error("quitting panel still renders")
	}
}

// TestControlViewShowsName verifies the rendered panel carries the display
// name and a status line.
func TestControlViewShowsName(t *testing.T) {
	m := newTestControl()
	model := drain(t, m, m.startCmd())
	cm := model.(ControlModel)

	view := cm.View()
	if !strings.Contains(view, "notes.mp3") {
		t.Error("view missing display name")
	}
	if !strings.Contains(view, "playing") {
		t.Errorf("view missing status, got:\n%s", view)
	}
}

// TestControlViewTruncatesLongName verifies long file names are shortened
// for the title line.
func TestControlViewTruncatesLongName(t *testing.T) {
	controller := playback.NewController(stubLauncher{})
	long := strings.Repeat("x", 100) + ".mp3"
	m := NewControlModel(controller, "/tmp/a.mp3", long, Config{})

	if strings.Contains(m.View(), long) {
		t.Error("long display name was not truncated")
	}
}

// TestControlRefreshShowsFinished verifies the tick-driven refresh reports
// natural completion.
func TestControlRefreshShowsFinished(t *testing.T) {
	launcher := stubLauncher{}
	controller := playback.NewController(launcher)
	if err := controller.Start("/tmp/a.mp3"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	m := NewControlModel(controller, "/tmp/a.mp3", "a.mp3", Config{})

	// Simulate the process exiting before the next poll.
	if _, err := controller.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	model := drain(t, m, m.refreshCmd())
	cm := model.(ControlModel)
	if cm.state != playback.StateStopped {
		t.Fatalf("state = %v after refresh, want stopped", cm.state)
	}
	if !strings.Contains(cm.View(), "stopped") {
		t.Error("view missing stopped status")
	}
}

// TestControlKeyStateSync verifies the replay binding only enables once
// playback is over.
func TestControlKeyStateSync(t *testing.T) {
	m := newTestControl()
	model := drain(t, m, m.startCmd())
	cm := model.(ControlModel)

	if cm.keys.replay.Enabled() {
		t.Error("replay enabled while playing")
	}
	if !cm.keys.toggle.Enabled() {
		t.Error("toggle disabled while playing")
	}

	if _, err := cm.controller.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	model = drain(t, cm, cm.refreshCmd())
	cm = model.(ControlModel)

	if !cm.keys.replay.Enabled() {
		t.Error("replay disabled after stop")
	}
	if cm.keys.toggle.Enabled() {
		t.Error("toggle enabled after stop")
	}
}
