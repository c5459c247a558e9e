// Package slog provides logging decorators for readclip ports.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readclip"
)

// Ensure LoggingQueue implements readclip.QueueStore.
var _ readclip.QueueStore = (*LoggingQueue)(nil)

// LoggingQueue wraps a QueueStore with structured logging around the
// shared-blob read-modify-write, which is the one place worth watching
// for contention.
type LoggingQueue struct {
	next   readclip.QueueStore
	logger *slog.Logger
}

// NewLoggingQueue creates a new LoggingQueue.
func NewLoggingQueue(next readclip.QueueStore, logger *slog.Logger) *LoggingQueue {
	return &LoggingQueue{next: next, logger: logger}
}

// Append delegates to the wrapped store and logs the outcome.
func (q *LoggingQueue) Append(ctx context.Context, article *readclip.Article) error {
	begin := time.Now()
	err := q.next.Append(ctx, article)
	if err != nil {
		q.logger.Error("queue append failed",
			"title", article.Title,
			"source", article.Source,
			"duration", time.Since(begin),
			"error", err,
		)
		return err
	}
	q.logger.Info("queue append",
		"title", article.Title,
		"source", article.Source,
		"duration", time.Since(begin),
	)
	return nil
}

// List delegates to the wrapped store and logs the queue length.
func (q *LoggingQueue) List(ctx context.Context) ([]*readclip.Article, error) {
	begin := time.Now()
	queue, err := q.next.List(ctx)
	if err != nil {
		q.logger.Error("queue list failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	q.logger.Info("queue list",
		"len", len(queue),
		"duration", time.Since(begin),
	)
	return queue, nil
}
