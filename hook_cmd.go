package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colinusm/readaloud/internal/classify"
	"github.com/colinusm/readaloud/internal/proc"
)

// hookCmd is the automation entry point: editors and agent hooks call it
// for every file they write, and only keyword-matched file names trigger a
// read-aloud. The playback runs in a detached child so the hook returns
// immediately.
var hookCmd = &cobra.Command{
	Use:     "hook FILE",
	Short:   "Read a file aloud only if its name matches the auto-read keywords",
	Example: paragraph("readaloud hook IMPLEMENTATION-SUMMARY.md"),
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]
		keywords := viper.GetStringSlice("autoread.keywords")
		if !classify.Match(path, keywords) {
			log.Debug("No keyword match, skipping", "path", path)
			return nil
		}

		exe, err := proc.Self()
		if err != nil {
			return fmt.Errorf("unable to resolve executable: %w", err)
		}

		handle, err := proc.Spawn(exe, "--no-gui", path)
		if err != nil {
			return fmt.Errorf("unable to start playback: %w", err)
		}
		log.Debug("Hook spawned reader", "path", path, "pid", handle.Pid())
		return nil
	},
}
