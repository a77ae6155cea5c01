// Package backend is the REST client for the finance API. Every endpoint
// answers with a {details, response} envelope where response carries either
// the entity or a human-readable error message; this package turns the latter
// into *APIError so callers can relay the message to the user.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the finance backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.httpc = h
	return c
}

// WithRateLimit paces outgoing requests; the commit stage fires a whole batch
// at once and the backend appreciates not being stampeded.
func (c *Client) WithRateLimit(perSecond float64, burst int) *Client {
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	return c
}

// Envelope is the backend's uniform response shape.
type Envelope struct {
	Details  string          `json:"details"`
	Response json.RawMessage `json:"response"`
}

// APIError carries the backend's message for a failed call.
type APIError struct {
	Status  int
	Details string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Details != "" {
		return e.Details
	}
	return fmt.Sprintf("backend request failed with status %d", e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if err := decodeEnvelope(resp.StatusCode, data, out); err != nil {
		c.logger.Warn("backend rejected request",
			slog.String("method", method), slog.String("path", path),
			slog.Int("status", resp.StatusCode), slog.Any("error", err))
		return err
	}
	return nil
}

// decodeEnvelope unwraps the {details, response} envelope. A string response
// is the backend's way of reporting failure regardless of HTTP status.
func decodeEnvelope(status int, data []byte, out any) error {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &APIError{Status: status, Message: fmt.Sprintf("unexpected response: %.200s", data)}
	}

	var msg string
	if len(env.Response) > 0 && json.Unmarshal(env.Response, &msg) == nil {
		if status < 400 && out == nil {
			// Plain string acknowledgements (e.g. deletes) are fine when the
			// caller expects no entity back.
			return nil
		}
		return &APIError{Status: status, Details: env.Details, Message: msg}
	}

	if status >= 400 {
		return &APIError{Status: status, Details: env.Details}
	}

	if out != nil && len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, out); err != nil {
			return fmt.Errorf("decoding response entity: %w", err)
		}
	}
	return nil
}
