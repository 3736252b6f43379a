// Package main provides the entry point for the readaloud CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colinusm/readaloud/internal/classify"
	"github.com/colinusm/readaloud/internal/player"
	"github.com/colinusm/readaloud/internal/synth"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	voice      string
	model      string
	speed      float64
	playerBin  string
	noGUI      bool

	rootCmd = &cobra.Command{
		Use:   "readaloud [FILE]",
		Short: "Read text files aloud, with a kill switch",
		Long: paragraph(
			fmt.Sprintf("\nConvert a text file to speech and %s, with playback controls and an emergency stop.", keyword("read it aloud")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return readAloud(cmd.Context(), args[0])
		},
	}
)

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()

	// The OpenAI key commonly lives in a .env next to the project being
	// read; load it quietly when present.
	_ = godotenv.Load()

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&voice, "voice", "v", "", "synthesis voice")
	rootCmd.Flags().StringVarP(&model, "model", "m", "", "synthesis model")
	rootCmd.Flags().Float64VarP(&speed, "speed", "x", 0, "speech speed multiplier")
	rootCmd.Flags().StringVar(&playerBin, "player", "", "audio player binary")
	rootCmd.Flags().BoolVar(&noGUI, "no-gui", false, "play without the control panel")

	_ = viper.BindPFlag("voice", rootCmd.Flags().Lookup("voice"))
	_ = viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("speed", rootCmd.Flags().Lookup("speed"))
	_ = viper.BindPFlag("player.binary", rootCmd.Flags().Lookup("player"))
	_ = viper.BindPFlag("no_gui", rootCmd.Flags().Lookup("no-gui"))

	defaults := synth.DefaultOptions()
	viper.SetDefault("voice", defaults.Voice)
	viper.SetDefault("model", defaults.Model)
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("speed", defaults.Speed)
	viper.SetDefault("max_chars", synth.MaxChars)
	viper.SetDefault("player.binary", "")
	viper.SetDefault("player.names", player.ProcessNames())
	viper.SetDefault("poll_interval", 500*time.Millisecond)
	viper.SetDefault("notify", true)
	viper.SetDefault("autoread.keywords", classify.DefaultKeywords())
	viper.SetDefault("interrupt.sweep", true)

	rootCmd.AddCommand(hookCmd, guiCmd, interruptCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "readaloud")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "readaloud")}, dirs...)
	}

	if c := os.Getenv("READALOUD_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("readaloud")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("readaloud")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
		return
	}

	configFile = filepath.Join(dirs[0], "readaloud.yml")
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
