package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/me/campus/internal/logging"
)

// Config holds API client configuration.
type Config struct {
	// BaseURL is the root of the backend REST API.
	BaseURL string

	// Token is the bearer token sent with authenticated requests.
	Token string

	// Timeout for individual HTTP requests.
	Timeout time.Duration

	// MaxRetries for transient failures.
	MaxRetries int

	// RetryDelay is the base delay between retries (doubles each attempt).
	RetryDelay time.Duration
}

// DefaultConfig returns a client configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:5208",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Client talks to the backend REST API. All business logic lives behind
// that API; the client only shuttles JSON and maps failures onto the
// error taxonomy in errors.go.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger
}

// NewClient creates a new API client with the given configuration.
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 1 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
		logger: logger.With("component", "api-client"),
	}
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	return c.config.Token
}

// SetToken updates the bearer token.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// WithToken returns a copy of the client bound to the given token.
// Handlers use this to issue requests on behalf of a signed-in session
// without mutating the shared client.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.config.Token = token
	return &cp
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// errorResponse is the backend's error body shape.
type errorResponse struct {
	Message string `json:"message"`
}

// call executes a request against the API with retries, decoding a JSON
// response into out when out is non-nil.
func (c *Client) call(ctx context.Context, op, method, path string, payload, out any) error {
	logger := c.logger.With("op", op, "method", method, "path", path, "request_id", uuid.NewString())

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return wrapErr(op, fmt.Errorf("marshaling request: %w", err))
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			logger.Debug("retrying after delay", "attempt", attempt, "delay", delay)

			select {
			case <-ctx.Done():
				return wrapErr(op, ctx.Err())
			case <-time.After(delay):
			}
		}

		err := c.doRequest(ctx, method, path, body, out)
		if err == nil {
			logger.Debug("request successful")
			return nil
		}

		lastErr = err
		if !IsRetryable(err) {
			return wrapErr(op, err)
		}
		logger.Debug("request failed, will retry", "error", err, "attempt", attempt)
	}

	return wrapErr(op, fmt.Errorf("all retries exhausted: %w", lastErr))
}

// doRequest performs a single HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte, out any) error {
	url := strings.TrimRight(c.config.BaseURL, "/") + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: httpResp.StatusCode}
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			httpErr.Message = errResp.Message
		}
		return httpErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshaling response: %w", err)
		}
	}
	return nil
}

// get issues a GET request.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	return c.call(ctx, op, http.MethodGet, path, nil, out)
}

// post issues a POST request with a JSON payload.
func (c *Client) post(ctx context.Context, op, path string, payload, out any) error {
	return c.call(ctx, op, http.MethodPost, path, payload, out)
}

// put issues a PUT request with an optional JSON payload.
func (c *Client) put(ctx context.Context, op, path string, payload, out any) error {
	return c.call(ctx, op, http.MethodPut, path, payload, out)
}

// del issues a DELETE request.
func (c *Client) del(ctx context.Context, op, path string) error {
	return c.call(ctx, op, http.MethodDelete, path, nil, nil)
}
