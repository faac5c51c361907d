package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/circuitbreaker"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	nrpkg "github.com/piresc/fleetdispatch/internal/pkg/newrelic"
	"github.com/piresc/fleetdispatch/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// Config configures a Client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retry   *retry.Policy
}

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth another attempt
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == nethttp.StatusTooManyRequests
}

// Client is a JSON client for an external service authenticated by API key.
// Calls are retried with backoff and guarded by a per-host circuit breaker.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *nethttp.Client
	retry      retry.Policy
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
}

// NewClient creates a new HTTP client
func NewClient(config Config, log *logger.ZapLogger) *Client {
	if log == nil {
		log = logger.NewNopLogger()
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	policy := retry.Upstream(config.BaseURL)
	if config.Retry != nil {
		policy = *config.Retry
	}
	policy.Retryable = isRetryable

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: &nethttp.Client{Timeout: timeout},
		retry:      policy,
		breakers:   circuitbreaker.NewManager(log),
		logger:     log,
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request with a JSON body and decodes the response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, result interface{}) error {
	target := c.baseURL + endpoint

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	host := c.baseURL
	return c.breakers.Execute(ctx, host, func(ctx context.Context) error {
		return c.retry.Do(ctx, func(ctx context.Context) error {
			return c.attempt(ctx, method, target, payload, result)
		})
	})
}

func (c *Client) attempt(ctx context.Context, method, target string, payload []byte, result interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		c.logger.Warn("HTTP request failed",
			logger.String("method", method),
			logger.String("url", target),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", target),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// transport failures surface as *url.Error; decode errors are permanent
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
