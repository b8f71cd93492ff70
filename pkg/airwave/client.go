// Package airwave provides the HTTP transport for the Airwave push-delivery
// API: an authenticated client, response decoding, error classification and
// a page iterator for listing endpoints.
package airwave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

const (
	defaultBaseURL = "https://go.airwave.io/"

	// The API is versioned through the Accept header rather than the path.
	acceptHeader    = "application/vnd.airwave+json; version=3;"
	requestIDHeader = "X-Airwave-Request-Id"
)

// RequestSender is the subset of the Client methods the entity layer uses.
// This allows mocking for unit tests.
type RequestSender interface {
	SendRequest(ctx context.Context, method string, rawURL string, body []byte, contentType string) (*Response, error)
}

// Response is the decoded result of one API exchange. Body is a
// map[string]any when the server returned a JSON object, otherwise the raw
// payload as a string (empty bodies leave it nil).
type Response struct {
	Body any
	Code int
}

// Map resolves the body union, returning the structured form when present.
func (r *Response) Map() (map[string]any, bool) {
	m, ok := r.Body.(map[string]any)
	return m, ok
}

type Client struct {
	cfg        Config
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient validates the configuration and builds a ready-to-use client.
// The logger is required; pass a discard handler to silence it.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}

	return &Client{
		cfg:        cfg,
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: cfg.timeoutOrDefault()},
		logger:     logger.With("component", "AirwaveClient"),
	}, nil
}

// SendRequest performs one blocking API exchange. rawURL may be a path
// relative to the configured base URL or an absolute per-resource URL (the
// server hands those out for schedules). 401 and 403 are classified into
// distinct errors; every other status is returned for the caller to record.
func (c *Client) SendRequest(ctx context.Context, method string, rawURL string, body []byte, contentType string) (*Response, error) {
	target, err := c.resolve(rawURL)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrRequestFailed, err)
	}
	req.SetBasicAuth(c.cfg.Key, c.cfg.Secret)
	req.Header.Set("Accept", acceptHeader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Correlation id for matching client logs with server-side request logs.
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Debug("sending request", "method", method, "url", target, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	}

	out := &Response{Code: resp.StatusCode}
	var parsed map[string]any
	if len(raw) > 0 {
		if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil {
			out.Body = parsed
		} else {
			out.Body = string(raw)
		}
	}

	c.logger.Debug("received response", "code", resp.StatusCode, "request_id", requestID)
	return out, nil
}

func (c *Client) resolve(rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url %q: %v", ErrRequestFailed, rawURL, err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}
