package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RetryPolicy bounds the retry loop for transient remote failures.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// IsRetryableStatus reports whether a marketplace response may succeed on a
// retry: rate limiting and server-side failures only.
func IsRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// DoWithRetry executes the request built by newRequest, retrying transient
// failures (network errors, 429, 5xx) with linear backoff. It returns the
// body of the first successful response. Non-retryable statuses fail
// immediately. The request is rebuilt per attempt so bodies are fresh.
func DoWithRetry(ctx context.Context, client *http.Client, policy RetryPolicy, newRequest func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * policy.Backoff):
			}
		}

		req, err := newRequest(ctx)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("reading response body: %w", err)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		if !IsRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status, string(body))
		}

		lastErr = fmt.Errorf("request failed with status %s", resp.Status)
	}

	return nil, fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}
