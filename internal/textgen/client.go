package textgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tbourn/bhakti-feed/internal/observability"
)

// Config configures Client.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64

	// RateRPS <= 0 disables the client-side limiter.
	RateRPS   float64
	RateBurst int

	BreakerFailures  uint32
	BreakerOpenFor   time.Duration
	BreakerHalfOpen  uint32
}

// Client is a Generator speaking the OpenAI-style chat completions
// protocol. Requests are throttled by a token bucket and guarded by a
// circuit breaker so a failing upstream is not hammered.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[string]
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger for breaker transitions and upstream errors.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

const breakerName = "textgen"

// NewClient builds a Client.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{cfg: cfg, http: pooledClient(), log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}

	limit := rate.Inf
	if cfg.RateRPS > 0 {
		limit = rate.Limit(cfg.RateRPS)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(limit, burst)

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c.cb = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerHalfOpen,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// A caller giving up is not an upstream failure.
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			observability.SetBreakerState(name, float64(to))
			c.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})
	observability.SetBreakerState(breakerName, float64(gobreaker.StateClosed))
	return c
}

// pooledClient returns an HTTP client with connection pooling suited to a
// single upstream host. Per-request deadlines come from the context.
func pooledClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          20,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the system prompt for t followed by msgs and returns the
// first choice's content.
func (c *Client) Generate(ctx context.Context, t ContentType, msgs []Message) (string, error) {
	if !c.limiter.Allow() {
		observability.ObserveTextgen(string(t), "rate_limited")
		return "", ErrRateLimited
	}
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	out, err := c.cb.Execute(func() (string, error) {
		return c.do(ctx, t, msgs)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = ErrCircuitOpen
	}
	observability.ObserveTextgen(string(t), outcome(err))
	if err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, t ContentType, msgs []Message) (string, error) {
	body := completionRequest{
		Model:       c.cfg.Model,
		Messages:    append([]Message{{Role: RoleSystem, Content: SystemPrompt(t)}}, msgs...),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ErrQuotaExceeded
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().Int("status", resp.StatusCode).Str("body", string(snippet)).Msg("text generator error")
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var cr completionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if len(cr.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := strings.TrimSpace(cr.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota"
	case errors.Is(err, ErrCircuitOpen):
		return "open"
	case errors.Is(err, ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "unavailable"
	}
	return "error"
}
