// Package clip orchestrates the share flow: fetch a page, run it
// through the extractor, and append the resulting article to the
// shared pending queue. It also maps outcomes to the success/failure
// messages the host UI displays.
package clip

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/readclip"
	"golang.org/x/sync/errgroup"
)

// Clipper coordinates one extraction attempt end to end. A failed
// fetch or failed append fails the whole operation once; retry policy
// belongs to the caller, as does any timeout via the context.
type Clipper struct {
	Fetcher   readclip.Fetcher
	Extractor readclip.Extractor
	Queue     readclip.QueueStore
	Limiter   readclip.DomainLimiter
	// Concurrency bounds ClipAll. Defaults to 4 when unset.
	Concurrency int
}

// ClipURL fetches the URL, extracts an article, and appends it to the
// pending queue. The returned error carries one of the readclip error
// codes (ENETWORK, EPARSING, ENOCONTENT, ESTORAGE).
func (c *Clipper) ClipURL(ctx context.Context, rawURL string) (*readclip.Article, error) {
	if c.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := c.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	raw, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	article, err := c.Extractor.ExtractFromURL(raw, rawURL)
	if err != nil {
		return nil, err
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	if err := c.Queue.Append(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// ClipText wraps literal shared text into an article and appends it to
// the pending queue. Wrapping itself cannot fail; only the append can.
func (c *Clipper) ClipText(ctx context.Context, text string) (*readclip.Article, error) {
	article := c.Extractor.WrapPlainText(text)
	if err := article.Validate(); err != nil {
		return nil, err
	}
	if err := c.Queue.Append(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// BatchResult holds the outcome of a ClipAll run.
type BatchResult struct {
	Clipped int
	Failed  int
}

// ProgressEvent reports progress during a ClipAll run.
type ProgressEvent struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as URLs finish processing.
type ProgressFunc func(ProgressEvent)

// ClipAll clips every URL with bounded concurrency. Individual
// failures are reported through progress and counted, not propagated;
// the returned error is non-nil only when the context is canceled.
func (c *Clipper) ClipAll(ctx context.Context, urls []string, progress ProgressFunc) (*BatchResult, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var completed, clipped, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range urls {
		u := u
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, err := c.ClipURL(ctx, u)
			if err != nil {
				failed.Add(1)
			} else {
				clipped.Add(1)
			}

			if progress != nil {
				progress(ProgressEvent{
					URL:       u,
					Completed: int(completed.Add(1)),
					Total:     len(urls),
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BatchResult{
		Clipped: int(clipped.Load()),
		Failed:  int(failed.Load()),
	}, nil
}

// Result is the completion signal reported to the host: success or
// failure plus a display message. Presentation is the host's problem.
type Result struct {
	OK      bool
	Message string
}

// Describe maps a clip outcome onto the host-facing result contract.
func Describe(article *readclip.Article, err error) Result {
	if err == nil {
		return Result{OK: true, Message: fmt.Sprintf("Added %q to your reading queue", article.Title)}
	}

	switch readclip.ErrorCode(err) {
	case readclip.ENETWORK:
		return Result{Message: "Couldn't load the page."}
	case readclip.EPARSING:
		return Result{Message: "The page doesn't contain readable text."}
	case readclip.ENOCONTENT:
		return Result{Message: "No readable content was found on the page."}
	case readclip.ESTORAGE:
		return Result{Message: "Couldn't save to the shared reading queue."}
	default:
		return Result{Message: readclip.ErrorMessage(err)}
	}
}
