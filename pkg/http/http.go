package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, url, payload, headers)
}

// do sends the request, retrying transport failures, 5xx responses and
// rate-limit (429) responses. The request is rebuilt from the payload
// bytes on every attempt. After the last attempt a response is returned
// to the caller as-is so client code can report the final status.
func (c *clientImpl) do(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	for attempt := 0; ; attempt++ {
		req, err := newRequest(ctx, method, url, payload, headers)
		if err != nil {
			return nil, 0, err
		}

		resp, err := c.client.Do(req)
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", readErr)
			}
			if !retryableStatus(resp.StatusCode) || attempt == c.config.Retries {
				return body, resp.StatusCode, nil
			}
		} else if attempt == c.config.Retries {
			return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
		}

		if err := waitRetry(ctx, c.config.RetryWait); err != nil {
			return nil, 0, err
		}
	}
}

func newRequest(ctx context.Context, method, url string, payload []byte, headers map[string]string) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// retryableStatus reports whether a response is worth another attempt.
// 429 covers provider rate limiting, 5xx covers transient server faults.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// waitRetry sleeps for the retry interval unless the context ends first.
func waitRetry(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
