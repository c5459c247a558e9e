// Package http provides an HTTP-based implementation of
// readclip.Fetcher for retrieving article pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/readclip"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements readclip.Fetcher at compile time.
var _ readclip.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bytes from URLs using plain HTTP requests.
// It does not execute JavaScript; article pages that render their text
// client-side will come back empty and fail extraction downstream.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET for the URL and returns the response body.
// Transport failures and non-2xx statuses are reported as ENETWORK so
// callers can distinguish fetch-layer failures from extraction ones.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, readclip.Errorf(readclip.ENETWORK, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, readclip.Errorf(readclip.ENETWORK, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readclip.Errorf(readclip.ENETWORK, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, readclip.Errorf(readclip.ENETWORK, "read body from %s: %v", url, err)
	}

	return body, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
