package readclip

import "context"

// Fetcher retrieves raw response bytes from URLs.
type Fetcher interface {
	// Fetch performs a GET for the URL and returns the response body.
	// Any transport failure or non-2xx status is reported as an
	// ENETWORK error; the extractor only ever sees bodies from
	// successful fetches.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor turns raw content into a normalized Article.
type Extractor interface {
	// ExtractFromURL extracts a clean title and body from raw HTML
	// fetched from sourceURL. Returns EPARSING if the bytes are not
	// valid text, ENOCONTENT if extraction yields an empty body.
	ExtractFromURL(raw []byte, sourceURL string) (*Article, error)

	// WrapPlainText wraps literal shared text into a single-chapter
	// Article without any HTML processing. It cannot fail.
	WrapPlainText(text string) *Article
}

// DomainLimiter provides per-domain rate limiting for batch clipping.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
