package playback

import "errors"

// Sentinel errors for the playback controller.
var (
	// ErrSpawn indicates the external audio player failed to launch.
	ErrSpawn = errors.New("audio player failed to launch")

	// ErrNotPlaying indicates pause was requested outside the playing state.
	ErrNotPlaying = errors.New("playback is not playing")

	// ErrNotPaused indicates resume was requested outside the paused state.
	ErrNotPaused = errors.New("playback is not paused")
)
