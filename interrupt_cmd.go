package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colinusm/readaloud/internal/proc"
	"github.com/colinusm/readaloud/ui"
)

// interruptCmd opens the voice-conversation kill switch: a small overlay
// that stops every known audio player on the machine, including players
// this process never started.
var interruptCmd = &cobra.Command{
	Use:     "interrupt",
	Aliases: []string{"stop"},
	Short:   "Open the emergency stop overlay for all audio playback",
	Example: paragraph("readaloud interrupt"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		names := viper.GetStringSlice("player.names")
		finder := proc.NewFinder(names, viper.GetBool("interrupt.sweep"))

		cfg, err := uiConfig()
		if err != nil {
			return err
		}
		if _, err := ui.NewInterruptProgram(finder, cfg).Run(); err != nil {
			return fmt.Errorf("unable to run interrupt overlay: %w", err)
		}
		return nil
	},
}
