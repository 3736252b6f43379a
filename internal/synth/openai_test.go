package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestSynthesizer(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return NewOpenAIWithConfig(cfg, DefaultOptions())
}

// TestOpenAISynthesize verifies the request carries the configured voice
// parameters and the response bytes come back verbatim.
func TestOpenAISynthesize(t *testing.T) {
	audio := []byte("fake-mp3-bytes")

	var gotReq openai.CreateSpeechRequest
	s := newTestSynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("request path = %q, want /v1/audio/speech", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	})

	data, err := s.Synthesize(context.Background(), "read this aloud")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !bytes.Equal(data, audio) {
		t.Errorf("audio = %q, want %q", data, audio)
	}

	if gotReq.Input != "read this aloud" {
		t.Errorf("request input = %q", gotReq.Input)
	}
	if gotReq.Model != "tts-1" || gotReq.Voice != "nova" {
		t.Errorf("request model/voice = %v/%v, want tts-1/nova", gotReq.Model, gotReq.Voice)
	}
	if gotReq.Speed != 1.1 {
		t.Errorf("request speed = %v, want 1.1", gotReq.Speed)
	}
}

// TestOpenAISynthesizeFailure verifies provider errors surface as
// ErrSynthesis with no retry.
func TestOpenAISynthesizeFailure(t *testing.T) {
	calls := 0
	s := newTestSynthesizer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := s.Synthesize(context.Background(), "text")
	if !errors.Is(err, ErrSynthesis) {
		t.Fatalf("Synthesize error = %v, want ErrSynthesis", err)
	}
	if calls != 1 {
		t.Errorf("provider called %d times, want 1 (no retry)", calls)
	}
}
