// Package synth turns text into spoken audio through a speech-synthesis
// provider. The provider call is opaque: text and voice parameters in,
// encoded audio bytes out.
package synth

import (
	"context"
	"errors"
)

// ErrSynthesis indicates the speech-synthesis call failed (network, auth,
// quota). Synthesis failures are terminal for the request; there is no
// retry.
var ErrSynthesis = errors.New("speech synthesis failed")

// Synthesizer converts prepared text into an encoded audio stream.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Options carries the voice parameters passed to the provider.
type Options struct {
	Model  string
	Voice  string
	Format string
	Speed  float64
}

// DefaultOptions returns the fastest-turnaround configuration: the low
// latency model with a clear voice, slightly sped up.
func DefaultOptions() Options {
	return Options{
		Model:  "tts-1",
		Voice:  "nova",
		Format: "mp3",
		Speed:  1.1,
	}
}
