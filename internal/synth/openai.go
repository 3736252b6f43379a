package synth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI synthesizes speech through the OpenAI audio/speech endpoint.
type OpenAI struct {
	client *openai.Client
	opts   Options
}

// NewOpenAI creates a synthesizer authenticated with the given API key.
func NewOpenAI(apiKey string, opts Options) *OpenAI {
	return NewOpenAIWithConfig(openai.DefaultConfig(apiKey), opts)
}

// NewOpenAIWithConfig creates a synthesizer with a custom client config,
// mainly so tests can point BaseURL at a local server.
func NewOpenAIWithConfig(cfg openai.ClientConfig, opts Options) *OpenAI {
	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		opts:   opts,
	}
}

// Synthesize submits text and reads back the encoded audio stream. The
// caller is responsible for truncating text to MaxChars beforehand.
func (o *OpenAI) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	res, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.opts.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(o.opts.Voice),
		ResponseFormat: openai.SpeechResponseFormat(o.opts.Format),
		Speed:          o.opts.Speed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer res.Close() //nolint:errcheck

	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("%w: reading audio stream: %v", ErrSynthesis, err)
	}

	log.Debug("synthesis complete",
		"chars", len(text),
		"bytes", len(data),
		"voice", o.opts.Voice,
		"duration", time.Since(start))
	return data, nil
}
