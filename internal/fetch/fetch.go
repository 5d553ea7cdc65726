// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads template files over HTTP for project
// initialization.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// Download fetches url and returns the response body. HTTP 429 responses
// are retried with exponential backoff starting at RetryBaseDelay; any
// other non-2xx status fails immediately. When maxRetries is 0 the default
// (3) is used. A nil client uses http.DefaultClient. If the context is
// cancelled during a backoff wait the function returns ctx.Err().
func Download(ctx context.Context, client *http.Client, url string, maxRetries int) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			// Drain and close the body before retrying.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("downloading %s: HTTP %d", url, resp.StatusCode)
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading response from %s: %w", url, readErr)
		}
		return data, nil
	}
}
