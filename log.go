package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
)

// setupLog discards logging by default. With READALOUD_DEBUG set, logs go
// to a file under the user cache directory so they never corrupt the TUI.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)

	debug, _ := strconv.ParseBool(os.Getenv("READALOUD_DEBUG"))
	if !debug {
		return func() error { return nil }, nil
	}

	scope := gap.NewScope(gap.User, "readaloud")
	dir, err := scope.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("unable to find cache directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}

	path := filepath.Join(dir, "readaloud.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	return f.Close, nil
}
