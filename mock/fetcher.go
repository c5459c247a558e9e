package mock

import (
	"context"

	"github.com/fwojciec/readclip"
)

var _ readclip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of readclip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
