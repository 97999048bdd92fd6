package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/logger"
)

// Ensure Transport implements the interface.
var _ driven.GridTransport = (*Transport)(nil)

const (
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "synergos-cli"

	// HeaderRequestID carries the id of each call.
	HeaderRequestID = "X-Request-ID"

	// maxBodySize caps how much of a response is read.
	maxBodySize = 10 << 20
)

// Config holds configuration for the REST transport.
type Config struct {
	// Settings locate the TTP and tune the transport.
	Settings domain.TTPSettings

	// Client replaces the default HTTP client. Its Timeout is left as is.
	Client *http.Client

	// UserAgent defaults to DefaultUserAgent.
	UserAgent string
}

// Transport sends requests to a TTP over HTTP.
type Transport struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a transport for the TTP described by cfg.
func New(cfg Config) (*Transport, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Settings.Timeout}
	}
	if cfg.Settings.Token != "" {
		client = withToken(client, cfg.Settings.Token)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	t := &Transport{
		baseURL:   cfg.Settings.Address(),
		client:    client,
		userAgent: userAgent,
	}
	if cfg.Settings.RateLimit > 0 {
		burst := cfg.Settings.Burst
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(cfg.Settings.RateLimit), burst)
	}
	return t, nil
}

// withToken returns a copy of client that sends token as a bearer token.
func withToken(client *http.Client, token string) *http.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	authed := *client
	authed.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   base,
	}
	return &authed
}

// BaseURL returns the address requests are sent to.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Do sends one request and decodes the response envelope.
func (t *Transport) Do(ctx context.Context, req domain.Request) (*domain.Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, status, err := t.do(ctx, requestID, req)

	logger.Request(requestID, req.Method, req.Path, status, time.Since(start), err)
	return resp, err
}

func (t *Transport) do(ctx context.Context, requestID string, r domain.Request) (*domain.Response, int, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("%w: rate limit: %w", domain.ErrConnection, err)
		}
	}

	var body io.Reader
	if r.Payload != nil {
		raw, err := json.Marshal(r.Payload)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: encode payload: %v", domain.ErrValidation, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, t.baseURL+r.Path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request: %w", domain.ErrConnection, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set(HeaderRequestID, requestID)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %w", domain.ErrConnection, r.Method, r.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response: %w", domain.ErrConnection, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, resp.StatusCode, &domain.ServiceError{
			StatusCode: resp.StatusCode,
			Method:     r.Method,
			Path:       r.Path,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var envelope domain.Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: decode %s %s response: %v", domain.ErrService, r.Method, r.Path, err)
	}
	return &envelope, resp.StatusCode, nil
}
