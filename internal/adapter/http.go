package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/eventfold/sponsorpipe/internal/logger"
)

// StatusError carries a non-2xx HTTP status so callers can map specific
// codes (404 in particular) to domain errors
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, string(e.Body))
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Get performs a GET request and unmarshals the response into result
	Get(ctx context.Context, url string, headers map[string]string, result interface{}) error

	// Post performs a POST request and returns the response body
	Post(ctx context.Context, url string, headers map[string]string, body io.Reader) ([]byte, error)

	// Patch performs a PATCH request and returns the response body
	Patch(ctx context.Context, url string, headers map[string]string, body io.Reader) ([]byte, error)

	// Delete performs a DELETE request
	Delete(ctx context.Context, url string, headers map[string]string) error
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry
// for rate limiting and transient network errors
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, req *http.Request) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		// Handle rate limiting - retry with backoff
		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			return fmt.Errorf("rate limited (429), retrying")
		}

		// Other non-2xx status codes are permanent errors
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(&StatusError{Code: resp.StatusCode, Body: body})
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	// Configure exponential backoff
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return respBody, nil
}

func (c *RealHTTPClient) newRequest(ctx context.Context, method, url string, headers map[string]string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// Get performs a GET request and unmarshals the response into result
func (c *RealHTTPClient) Get(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, url, headers, nil)
	if err != nil {
		return err
	}

	respBody, err := c.doRequestWithRetry(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Post performs a POST request and returns the response body
func (c *RealHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body io.Reader) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodPost, url, headers, body)
	if err != nil {
		return nil, err
	}

	return c.doRequestWithRetry(ctx, req)
}

// Patch performs a PATCH request and returns the response body
func (c *RealHTTPClient) Patch(ctx context.Context, url string, headers map[string]string, body io.Reader) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodPatch, url, headers, body)
	if err != nil {
		return nil, err
	}

	return c.doRequestWithRetry(ctx, req)
}

// Delete performs a DELETE request
func (c *RealHTTPClient) Delete(ctx context.Context, url string, headers map[string]string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, url, headers, nil)
	if err != nil {
		return err
	}

	_, err = c.doRequestWithRetry(ctx, req)
	return err
}
