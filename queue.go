package readclip

import "context"

// QueueKey is the well-known storage key under which the pending queue
// blob lives. It is shared with the consuming reader application and
// must not change.
const QueueKey = "pendingArticles"

// QueueStore persists the pending queue shared with the reader
// application. The queue is a single ordered sequence of articles,
// newest first, serialized as one JSON array under QueueKey.
type QueueStore interface {
	// Append prepends the article to the queue. The read-modify-write
	// over the shared blob is atomic with respect to concurrent
	// appenders: two simultaneous appends must both survive. An
	// existing blob that fails to decode is treated as an empty queue
	// rather than failing the append. Returns ESTORAGE if the shared
	// store cannot be opened or written.
	Append(ctx context.Context, article *Article) error

	// List returns the queued articles, newest first. An absent or
	// undecodable blob yields an empty queue.
	List(ctx context.Context) ([]*Article, error)
}
