package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"postcraft/internal/config/configs"
	"postcraft/internal/core/port"
	"postcraft/internal/metrics"
)

// maxResponseBytes caps how much of an upstream reply is read.
const maxResponseBytes = 4 << 20

// Client implements port.PostGenerator on top of the generateContent REST
// endpoint. Every call is a single request: there are no retries. Calls
// are throttled by a token bucket and short-circuited by a circuit breaker
// while the upstream keeps failing.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

var _ port.PostGenerator = (*Client)(nil)

// NewClient builds a client from cfg. m may be nil.
func NewClient(cfg configs.Gemini, logger *slog.Logger, m *metrics.Metrics) *Client {
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	logger = logger.With(slog.String("component", "gemini"))

	st := gobreaker.Settings{
		Name:    "gemini",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name), slog.String("from", from.String()), slog.String("to", to.String()))
		},
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		breaker:    gobreaker.NewCircuitBreaker(st),
		logger:     logger,
		metrics:    m,
	}
}

// GenerateCandidates asks the model for CandidateCount posts. Transport
// failures, error statuses and replies that do not decode into exactly
// CandidateCount strings all yield an empty slice and a nil error; callers
// treat that as "no candidates produced". Only a missing API key is
// reported, wrapped in port.ErrConfiguration.
func (c *Client) GenerateCandidates(ctx context.Context, req port.GenerationRequest) ([]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", port.ErrConfiguration)
	}

	start := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Warn("generation request throttled", slog.Any("error", err))
		c.metrics.ObserveUpstream(metrics.UpstreamThrottled, time.Since(start))
		return []string{}, nil
	}

	prompt := BuildPrompt(req)
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.generate(ctx, prompt)
	})
	if err != nil {
		outcome := metrics.UpstreamError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.UpstreamBreakerOpen
		}
		c.logger.Warn("generation request failed", slog.String("outcome", outcome), slog.Any("error", err))
		c.metrics.ObserveUpstream(outcome, time.Since(start))
		return []string{}, nil
	}

	candidates, err := ParseCandidates(res.(string))
	if err != nil {
		c.logger.Warn("failed to parse generation output", slog.Any("error", err))
		c.metrics.ObserveUpstream(metrics.UpstreamParseError, time.Since(start))
		return []string{}, nil
	}

	c.logger.Debug("generation completed",
		slog.Int("candidates", len(candidates)), slog.Duration("elapsed", time.Since(start)))
	c.metrics.ObserveUpstream(metrics.UpstreamOK, time.Since(start))
	return candidates, nil
}

// generate performs the HTTP call and returns the raw text payload. Only
// transport errors and error statuses are returned as errors so that they
// count against the breaker; an unreadable envelope yields "".
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// the URL embeds the key; keep it out of logs
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var envelope generateResponse
	if err = json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Debug("undecodable generation envelope", slog.Any("error", err))
		return "", nil
	}
	if envelope.Error != nil {
		c.logger.Debug("generation envelope carries an error", slog.String("status", envelope.Error.Status))
		return "", nil
	}
	return envelope.text(), nil
}
