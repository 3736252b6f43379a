// Package ui provides the terminal front-ends: a per-file playback control
// panel and the voice-conversation interrupt overlay. Both are thin
// consumers of the playback controller and process discovery; every state
// mutation happens on the Bubble Tea event loop.
package ui

import "time"

const defaultPollInterval = 500 * time.Millisecond

// Config contains TUI-specific configuration.
type Config struct {
	// PollInterval between process liveness probes.
	PollInterval time.Duration

	// ShowPids displays raw PIDs in the interrupt overlay.
	ShowPids bool

	// For debugging the UI.
	Debug bool `env:"READALOUD_DEBUG"`
}

func (c Config) pollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return defaultPollInterval
	}
	return c.PollInterval
}
