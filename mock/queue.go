package mock

import (
	"context"

	"github.com/fwojciec/readclip"
)

var _ readclip.QueueStore = (*QueueStore)(nil)

// QueueStore is a mock implementation of readclip.QueueStore.
type QueueStore struct {
	AppendFn func(ctx context.Context, article *readclip.Article) error
	ListFn   func(ctx context.Context) ([]*readclip.Article, error)
}

func (s *QueueStore) Append(ctx context.Context, article *readclip.Article) error {
	return s.AppendFn(ctx, article)
}

func (s *QueueStore) List(ctx context.Context) ([]*readclip.Article, error) {
	return s.ListFn(ctx)
}
