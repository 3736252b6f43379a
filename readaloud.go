package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/colinusm/readaloud/internal/playback"
	"github.com/colinusm/readaloud/internal/player"
	"github.com/colinusm/readaloud/internal/synth"
	"github.com/colinusm/readaloud/ui"
)

var errMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// readAloud converts the file at path to speech and plays it back. With a
// terminal attached the playback control panel runs; otherwise playback is
// watched headless and a desktop notification reports completion.
func readAloud(ctx context.Context, path string) error {
	text, err := loadText(path)
	if err != nil {
		return err
	}
	if text == "" {
		log.Info("Nothing to read", "path", path)
		return nil
	}

	audioPath, err := synthesizeToFile(ctx, text)
	if err != nil {
		return err
	}

	launcher, err := player.New(viper.GetString("player.binary"))
	if err != nil {
		return err
	}
	controller := playback.NewController(launcher)

	displayName := filepath.Base(path)
	if useGUI() {
		err := runControlPanel(controller, audioPath, displayName)
		if err == nil {
			return nil
		}
		log.Warn("Control panel unavailable, playing without it", "err", err)
	}
	return playHeadless(ctx, controller, audioPath, displayName)
}

// loadText reads the file and trims it; whitespace-only files read as empty.
func loadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// synthesizeToFile runs speech synthesis and writes the audio to a file in
// the temp directory. The file is intentionally left behind after playback
// so a replay never re-synthesizes.
func synthesizeToFile(ctx context.Context, text string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errMissingAPIKey
	}

	opts := synth.Options{
		Model:  viper.GetString("model"),
		Voice:  viper.GetString("voice"),
		Format: viper.GetString("format"),
		Speed:  viper.GetFloat64("speed"),
	}
	prepared := synth.Prepare(text, viper.GetInt("max_chars"))

	audio, err := synth.NewOpenAI(apiKey, opts).Synthesize(ctx, prepared)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "readaloud-*."+opts.Format)
	if err != nil {
		return "", fmt.Errorf("unable to create audio file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(audio); err != nil {
		return "", fmt.Errorf("unable to write audio file: %w", err)
	}
	log.Debug("Wrote audio", "path", f.Name(), "bytes", len(audio))
	return f.Name(), nil
}

func useGUI() bool {
	if viper.GetBool("no_gui") {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func uiConfig() (ui.Config, error) {
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return ui.Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.PollInterval = viper.GetDuration("poll_interval")
	return cfg, nil
}

func runControlPanel(controller *playback.Controller, audioPath, displayName string) error {
	cfg, err := uiConfig()
	if err != nil {
		return err
	}
	if _, err := ui.NewControlProgram(controller, audioPath, displayName, cfg).Run(); err != nil {
		return fmt.Errorf("unable to run control panel: %w", err)
	}
	return nil
}

// playHeadless plays without a terminal UI, waiting for the player process
// to finish and raising a desktop notification once it has.
func playHeadless(ctx context.Context, controller *playback.Controller, audioPath, displayName string) error {
	// A failed control panel may have started playback already.
	if controller.State() == playback.StateIdle {
		if err := controller.Start(audioPath); err != nil {
			return err
		}
	}

	interval := viper.GetDuration("poll_interval")
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	var last playback.StateType
	for state := range controller.Watch(ctx, interval) {
		last = state
	}

	if last == playback.StateFinished && viper.GetBool("notify") {
		if err := beeep.Notify("readaloud", "Finished reading "+displayName, ""); err != nil {
			log.Debug("Notification failed", "err", err)
		}
	}
	return nil
}
