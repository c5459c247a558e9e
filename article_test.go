package readclip_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/readclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *readclip.Article {
		return &readclip.Article{
			ID:     "a1",
			Title:  "Title",
			Source: "example.com",
			Chapters: []*readclip.Chapter{
				{ID: "c1", Title: "Title", Content: "Body"},
			},
		}
	}

	t.Run("valid article passes", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid().Validate())
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.Title = ""
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, readclip.EINVALID, readclip.ErrorCode(err))
	})

	t.Run("requires at least one chapter", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.Chapters = nil
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, readclip.EINVALID, readclip.ErrorCode(err))
	})

	t.Run("requires chapter IDs", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.Chapters[0].ID = ""
		err := a.Validate()
		require.Error(t, err)
		assert.Equal(t, readclip.EINVALID, readclip.ErrorCode(err))
	})

	t.Run("empty chapter content is allowed", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.Chapters[0].Content = ""
		require.NoError(t, a.Validate())
	})
}

func TestArticle_WireFormat(t *testing.T) {
	t.Parallel()

	t.Run("round-trips field for field", func(t *testing.T) {
		t.Parallel()

		a := &readclip.Article{
			ID:        "a1",
			Title:     "Breaking News",
			Source:    "example.com",
			SourceURL: "https://www.example.com/a",
			Chapters: []*readclip.Chapter{
				{ID: "c1", Title: "Breaking News", Content: "Hello & welcome.\n\nSecond graf."},
			},
			DateAdded: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		}

		data, err := json.Marshal(a)
		require.NoError(t, err)

		var got readclip.Article
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *a, got)
	})

	t.Run("omits unset optional fields", func(t *testing.T) {
		t.Parallel()

		a := &readclip.Article{
			ID:     "a1",
			Title:  "Notes",
			Source: readclip.SourceText,
			Chapters: []*readclip.Chapter{
				{ID: "c1", Title: "Notes", Content: "Notes\nFirst line continues..."},
			},
			DateAdded: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		}

		data, err := json.Marshal(a)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.NotContains(t, fields, "sourceUrl")
		assert.NotContains(t, fields, "author")

		chapters, ok := fields["chapters"].([]any)
		require.True(t, ok)
		require.Len(t, chapters, 1)
		assert.NotContains(t, chapters[0], "htmlContent")
	})

	t.Run("reading cursors serialize even when zero", func(t *testing.T) {
		t.Parallel()

		a := &readclip.Article{
			ID:     "a1",
			Title:  "Title",
			Source: "example.com",
			Chapters: []*readclip.Chapter{
				{ID: "c1", Title: "Title", Content: "Body"},
			},
		}

		data, err := json.Marshal(a)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Contains(t, fields, "lastReadChapter")
		assert.Contains(t, fields, "lastReadPosition")
	})
}
