// Package webapi provides the shared HTTP-JSON client used by every
// registry client in toolcodex (GitHub, bio.tools, anaconda.org,
// Galaxy servers).
//
// Usage:
//
//	client, err := webapi.New(webapi.WithTimeout(30 * time.Second))
//	var out searchResult
//	err = client.GetJSON(ctx, url, webapi.Headers{"Authorization": "token " + tok}, &out)
//
// Transient connection errors are retried with a fixed delay before the
// last error is surfaced. Error-status responses are returned as
// *APIError and never retried.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultRetries is the number of attempts for a GET hitting
	// connection-level failures.
	DefaultRetries = 3
	// DefaultRetryDelay is the fixed pause between retry attempts.
	DefaultRetryDelay = 2 * time.Second
)

// Headers holds extra request headers.
type Headers map[string]string

// Client is a thin JSON-over-HTTP GET client with bounded retries.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	retries    int
	retryDelay time.Duration
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
		retries:    cfg.retries,
		retryDelay: cfg.retryDelay,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// WithRetries overrides the retry count and delay for connection errors.
func WithRetries(n int, delay time.Duration) Option {
	return func(cfg *clientConfig) error {
		if n < 1 {
			return fmt.Errorf("webapi: retries must be >= 1, got %d", n)
		}
		cfg.retries = n
		cfg.retryDelay = delay
		return nil
	}
}

// GetJSON performs a GET request against rawURL and decodes the JSON
// response into dst. Connection-level failures are retried up to the
// configured attempt count with a fixed delay; error-status responses
// are returned immediately as *APIError. A nil dst discards the body.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers Headers, dst any) error {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		err := c.getJSONOnce(ctx, rawURL, headers, dst)
		if err == nil {
			return nil
		}
		if !isConnectionError(err) {
			return err
		}
		lastErr = err
		if attempt < c.retries {
			c.logger.WarnContext(ctx, "connection error, retrying",
				"url", rawURL, "attempt", attempt, "retries", c.retries, "delay", c.retryDelay)
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("connection aborted after %d attempts: %w", c.retries, lastErr)
}

func (c *Client) getJSONOnce(ctx context.Context, rawURL string, headers Headers, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.DebugContext(ctx, "GET", "url", rawURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		msg := string(body)
		if msg == "" {
			msg = resp.Status
		}
		return newAPIError(rawURL, resp.StatusCode, msg)
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("response is not valid JSON: %w", err)
		}
	}
	return nil
}

// isConnectionError reports whether err is a transport-level failure
// worth retrying (reset, refused, timeout, EOF mid-handshake). HTTP
// error statuses and decode errors are not connection errors.
func isConnectionError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
