package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/config/configs"
	"postcraft/internal/core/port"
	"postcraft/internal/metrics"
)

var fivePosts = `["one","two","three","four","five"]`

func newTestClient(t *testing.T, baseURL string, mutate ...func(*configs.Gemini)) *Client {
	t.Helper()
	cfg := configs.Gemini{
		APIKey:          "test-key",
		BaseURL:         baseURL,
		Model:           "gemini-pro",
		Timeout:         5 * time.Second,
		BreakerFailures: 5,
		BreakerCooldown: time.Minute,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.New())
}

// replyWith returns a handler that answers every request with the given
// payload embedded at candidates[0].content.parts[0].text.
func replyWith(t *testing.T, calls *atomic.Int32, payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": payload}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func TestGenerateCandidatesSendsExpectedRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body generateRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) ||
			!assert.Len(t, body.Contents, 1) || !assert.Len(t, body.Contents[0].Parts, 1) {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		prompt := body.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, `"imageTopTextBottom"`)
		assert.Contains(t, prompt, noInstructions)
		assert.Contains(t, prompt, "Eco-friendly bottle")

		replyWith(t, &calls, fivePosts)(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.GenerateCandidates(context.Background(), port.GenerationRequest{
		Layout:             "imageTopTextBottom",
		ProductDescription: "Eco-friendly bottle",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerateCandidatesDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler func(t *testing.T, calls *atomic.Int32) http.HandlerFunc
	}{
		{
			name: "payload is not json",
			handler: func(t *testing.T, calls *atomic.Int32) http.HandlerFunc {
				return replyWith(t, calls, "Here are your posts: 1. Buy now!")
			},
		},
		{
			name: "wrong number of candidates",
			handler: func(t *testing.T, calls *atomic.Int32) http.HandlerFunc {
				return replyWith(t, calls, `["one","two"]`)
			},
		},
		{
			name: "array of non strings",
			handler: func(t *testing.T, calls *atomic.Int32) http.HandlerFunc {
				return replyWith(t, calls, `[1,2,3,4,5]`)
			},
		},
		{
			name: "no candidates in envelope",
			handler: func(t *testing.T, calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)
					_, _ = io.WriteString(w, `{"candidates":[]}`)
				}
			},
		},
		{
			name: "envelope is not json",
			handler: func(t *testing.T, calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)
					_, _ = io.WriteString(w, `<html>oops</html>`)
				}
			},
		},
		{
			name: "server error",
			handler: func(t *testing.T, calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)
					http.Error(w, "boom", http.StatusInternalServerError)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(tt.handler(t, &calls))
			defer srv.Close()

			got, err := newTestClient(t, srv.URL).GenerateCandidates(context.Background(), port.GenerationRequest{Layout: "default"})
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestGenerateCandidatesAcceptsFencedPayload(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(replyWith(t, &calls, "```json\n"+fivePosts+"\n```"))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).GenerateCandidates(context.Background(), port.GenerationRequest{Layout: "default"})
	require.NoError(t, err)
	assert.Len(t, got, CandidateCount)
}

func TestGenerateCandidatesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got, err := newTestClient(t, url).GenerateCandidates(context.Background(), port.GenerationRequest{Layout: "default"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateCandidatesRequiresAPIKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(replyWith(t, &calls, fivePosts))
	defer srv.Close()

	c := newTestClient(t, srv.URL, func(cfg *configs.Gemini) { cfg.APIKey = "" })
	got, err := c.GenerateCandidates(context.Background(), port.GenerationRequest{Layout: "default"})
	require.ErrorIs(t, err, port.ErrConfiguration)
	assert.Nil(t, got)
	assert.Zero(t, calls.Load())
}

func TestGenerateCandidatesBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, func(cfg *configs.Gemini) { cfg.BreakerFailures = 2 })
	for i := 0; i < 4; i++ {
		got, err := c.GenerateCandidates(context.Background(), port.GenerationRequest{Layout: "default"})
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.Equal(t, int32(2), calls.Load(), "open breaker must not reach the upstream")
}
