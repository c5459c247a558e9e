// Package redis provides a Redis-backed implementation of the shared
// pending queue store using optimistic WATCH transactions, for
// deployments where the queue is shared over the network rather than
// through a database file.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fwojciec/readclip"
	"github.com/redis/go-redis/v9"
)

// Compile-time interface verification.
var _ readclip.QueueStore = (*QueueService)(nil)

// maxRetries bounds the optimistic-locking retry loop in Append.
const maxRetries = 25

// QueueService implements readclip.QueueStore over a single Redis key.
type QueueService struct {
	client *redis.Client
	key    string
}

// NewQueueService creates a QueueService on an existing client.
func NewQueueService(client *redis.Client) *QueueService {
	return &QueueService{client: client, key: readclip.QueueKey}
}

// Open connects to the Redis server at addr and verifies connectivity.
func Open(addr string) (*QueueService, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, readclip.Errorf(readclip.ESTORAGE, "failed to connect to redis at %s: %v", addr, err)
	}

	return NewQueueService(client), nil
}

// Close closes the underlying Redis client.
func (s *QueueService) Close() error {
	return s.client.Close()
}

// Append prepends the article to the shared pending queue. The
// read-modify-write runs inside a WATCH transaction: if another writer
// touches the key between our read and write the transaction fails and
// is retried against the fresh queue state, so concurrent appends both
// survive.
func (s *QueueService) Append(ctx context.Context, article *readclip.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		blob, err := tx.Get(ctx, s.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		queue := decodeQueue(blob)
		queue = append([]*readclip.Article{article}, queue...)

		data, err := json.Marshal(queue)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err := s.client.Watch(ctx, txf, s.key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race; re-read and retry.
			continue
		}
		return readclip.Errorf(readclip.ESTORAGE, "failed to append to pending queue: %v", err)
	}

	return readclip.Errorf(readclip.ESTORAGE, "append contention on %q exceeded %d attempts", s.key, maxRetries)
}

// List returns the queued articles, newest first.
func (s *QueueService) List(ctx context.Context) ([]*readclip.Article, error) {
	blob, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, readclip.Errorf(readclip.ESTORAGE, "failed to read pending queue: %v", err)
	}
	return decodeQueue(blob), nil
}

// decodeQueue deserializes the queue blob, treating a corrupt blob as
// an empty queue; the next append overwrites it with a valid queue.
func decodeQueue(blob []byte) []*readclip.Article {
	if len(blob) == 0 {
		return nil
	}
	var queue []*readclip.Article
	if err := json.Unmarshal(blob, &queue); err != nil {
		return nil
	}
	return queue
}
