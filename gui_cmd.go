package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colinusm/readaloud/internal/playback"
	"github.com/colinusm/readaloud/internal/player"
)

// guiCmd opens the control panel for an already-synthesized audio file.
var guiCmd = &cobra.Command{
	Use:     "gui AUDIO NAME",
	Short:   "Open the playback control panel for an audio file",
	Example: paragraph("readaloud gui /tmp/readaloud-1234.mp3 notes.md"),
	Args:    cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		audioPath, displayName := args[0], args[1]
		if _, err := os.Stat(audioPath); err != nil {
			return fmt.Errorf("unable to open audio file: %w", err)
		}

		launcher, err := player.New(viper.GetString("player.binary"))
		if err != nil {
			return err
		}
		return runControlPanel(playback.NewController(launcher), audioPath, displayName)
	},
}
