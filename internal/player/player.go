// Package player launches the external audio-player binary used for
// playback. No audio is decoded in-process: the player owns the format and
// we own its process.
package player

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/colinusm/readaloud/internal/proc"
)

// ErrNoPlayer indicates no usable audio player binary was found on PATH.
var ErrNoPlayer = errors.New("no audio player binary found")

// ProcessNames returns the executable names the interrupt overlay scans
// for. This is the union of every player we may spawn plus the players
// other tools commonly leave running.
func ProcessNames() []string {
	return []string{"afplay", "paplay", "aplay", "mpv", "ffplay"}
}

// candidates lists player binaries per platform, in preference order.
func candidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"afplay"}
	case "windows":
		return []string{"mpv", "ffplay"}
	default:
		return []string{"paplay", "aplay", "mpv", "ffplay"}
	}
}

// CommandLauncher spawns a fixed player binary for each audio file. It
// implements playback.Launcher.
type CommandLauncher struct {
	bin string
}

// New resolves the player binary. A non-empty override must exist on PATH;
// otherwise the first available platform candidate wins.
func New(override string) (*CommandLauncher, error) {
	if override != "" {
		path, err := exec.LookPath(override)
		if err != nil {
			return nil, fmt.Errorf("configured player %q: %w", override, ErrNoPlayer)
		}
		return &CommandLauncher{bin: path}, nil
	}

	for _, name := range candidates() {
		if path, err := exec.LookPath(name); err == nil {
			log.Debug("selected audio player", "binary", path)
			return &CommandLauncher{bin: path}, nil
		}
	}
	return nil, ErrNoPlayer
}

// Binary returns the resolved player binary path.
func (l *CommandLauncher) Binary() string { return l.bin }

// Start spawns the player for the given audio file, detached.
func (l *CommandLauncher) Start(audioPath string) (proc.Process, error) {
	return proc.Spawn(l.bin, argsFor(l.bin, audioPath)...)
}

// argsFor builds the player invocation. Most players take a bare file path;
// the video-capable ones need flags to stay silent and exit when done.
func argsFor(bin, audioPath string) []string {
	switch trimExt(filepath.Base(bin)) {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", audioPath}
	case "mpv":
		return []string{"--no-video", "--really-quiet", audioPath}
	default:
		return []string{audioPath}
	}
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
