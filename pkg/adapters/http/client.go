package http

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

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
)

var _ ports.Backend = (*Client)(nil)

// Client calls a notequiz backend over HTTP.
// Every request is a single attempt: no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request. Zero keeps the transport default (no timeout).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithClientLogger configures the structured logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summarize implements ports.Backend.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	var resp SummarizeResponse
	if err := c.post(ctx, "/summarize", SummarizeRequest{Text: text}, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", domain.NewServiceError(resp.Error)
	}
	return resp.Summary, nil
}

// GenerateQuiz implements ports.Backend.
func (c *Client) GenerateQuiz(ctx context.Context, summary string) ([]domain.QuizQuestion, error) {
	var resp QuizResponse
	if err := c.post(ctx, "/quiz", QuizRequest{Summary: summary}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, domain.NewServiceError(resp.Error)
	}
	if resp.Quiz == nil {
		return nil, fmt.Errorf("%w: response has no quiz field", domain.ErrTransport)
	}
	return *resp.Quiz, nil
}

// post sends body as JSON and decodes the JSON reply into out whatever the
// status code, so that error payloads on 4xx/5xx reach the caller.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer res.Body.Close()

	c.logger.Debug("Backend Responded", "path", path, "status", res.StatusCode)

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response (status %d): %w", domain.ErrTransport, path, res.StatusCode, err)
	}
	return nil
}
