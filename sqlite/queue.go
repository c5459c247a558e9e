package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/fwojciec/readclip"
)

// Compile-time interface verification.
var _ readclip.QueueStore = (*QueueService)(nil)

// QueueService implements readclip.QueueStore over a single kv row.
// Every append is a read-modify-write of the whole queue blob inside
// one transaction; the single-connection pool serializes writers in
// process and the immediate transaction lock plus busy timeout
// serializes writers across processes.
type QueueService struct {
	db *DB
}

// NewQueueService creates a new QueueService.
func NewQueueService(db *DB) *QueueService {
	return &QueueService{db: db}
}

// Append prepends the article to the shared pending queue.
func (s *QueueService) Append(ctx context.Context, article *readclip.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return readclip.Errorf(readclip.ESTORAGE, "failed to open pending queue: %v", err)
	}
	defer tx.Rollback()

	var blob []byte
	err = tx.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, readclip.QueueKey).Scan(&blob)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return readclip.Errorf(readclip.ESTORAGE, "failed to read pending queue: %v", err)
	}

	queue := decodeQueue(blob)
	queue = append([]*readclip.Article{article}, queue...)

	data, err := json.Marshal(queue)
	if err != nil {
		return readclip.Errorf(readclip.EINTERNAL, "failed to encode pending queue: %v", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, readclip.QueueKey, data); err != nil {
		return readclip.Errorf(readclip.ESTORAGE, "failed to write pending queue: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return readclip.Errorf(readclip.ESTORAGE, "failed to commit pending queue: %v", err)
	}
	return nil
}

// List returns the queued articles, newest first.
func (s *QueueService) List(ctx context.Context) ([]*readclip.Article, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, readclip.QueueKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, readclip.Errorf(readclip.ESTORAGE, "failed to read pending queue: %v", err)
	}
	return decodeQueue(blob), nil
}

// decodeQueue deserializes the queue blob. A corrupt blob is treated as
// an empty queue so one bad write cannot permanently wedge the share
// path; the next append overwrites it with a valid queue.
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
