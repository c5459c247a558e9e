package extract_test

import (
	"testing"

	"github.com/fwojciec/readclip"
	"github.com/fwojciec/readclip/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractFromURL(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, source, and body from article markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Breaking News | Example Times</title></head>` +
			`<body><nav>menu</nav><article><p>Hello &amp; welcome.</p><p>Second graf.</p></article>` +
			`<footer>copyright</footer></body></html>`

		ext := extract.NewExtractor()
		article, err := ext.ExtractFromURL([]byte(html), "https://www.example.com/a")
		require.NoError(t, err)

		assert.Equal(t, "Breaking News", article.Title)
		assert.Equal(t, "example.com", article.Source)
		assert.Equal(t, "https://www.example.com/a", article.SourceURL)
		require.Len(t, article.Chapters, 1)
		assert.Equal(t, "Breaking News", article.Chapters[0].Title)
		assert.Equal(t, "Hello & welcome.\n\nSecond graf.", article.Chapters[0].Content)
	})

	t.Run("assigns IDs, timestamp, and zeroed cursors", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()
		article, err := ext.ExtractFromURL([]byte("<p>Body text.</p>"), "https://example.com/post")
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID)
		assert.NotEmpty(t, article.Chapters[0].ID)
		assert.NotEqual(t, article.ID, article.Chapters[0].ID)
		assert.False(t, article.DateAdded.IsZero())
		assert.Zero(t, article.LastReadChapter)
		assert.Zero(t, article.LastReadPosition)
		require.NoError(t, article.Validate())
	})

	t.Run("returns EPARSING for bytes that are not valid text", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()
		_, err := ext.ExtractFromURL([]byte{0xff, 0xfe, 0xfd}, "https://example.com/a")
		require.Error(t, err)
		assert.Equal(t, readclip.EPARSING, readclip.ErrorCode(err))
	})

	t.Run("returns ENOCONTENT when the article holds only scripts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><script>var x = "hidden";</script></article></body></html>`

		ext := extract.NewExtractor()
		_, err := ext.ExtractFromURL([]byte(html), "https://example.com/a")
		require.Error(t, err)
		assert.Equal(t, readclip.ENOCONTENT, readclip.ErrorCode(err))
	})
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		sourceURL string
		want      string
	}{
		{
			name:      "uses trimmed title element",
			doc:       "<html><head><title>\n  A Clean Title  \n</title></head></html>",
			sourceURL: "https://example.com/a",
			want:      "A Clean Title",
		},
		{
			name:      "matches title tag case-insensitively",
			doc:       "<TITLE>Shouting Title</TITLE>",
			sourceURL: "",
			want:      "Shouting Title",
		},
		{
			name:      "strips site name after pipe separator",
			doc:       "<title>Breaking News | Example Times</title>",
			sourceURL: "",
			want:      "Breaking News",
		},
		{
			name:      "strips site name after last hyphen separator",
			doc:       "<title>A Fairly Long Headline - Part Two - Example Times</title>",
			sourceURL: "",
			want:      "A Fairly Long Headline - Part Two",
		},
		{
			name:      "keeps short titles containing a hyphen",
			doc:       "<title>Go 1.25 - FAQ</title>",
			sourceURL: "",
			want:      "Go 1.25 - FAQ",
		},
		{
			name:      "decodes entities in the title",
			doc:       "<title>Q&amp;A &mdash; Day One</title>",
			sourceURL: "",
			want:      "Q&A — Day One",
		},
		{
			name:      "falls back to last URL path segment",
			doc:       "<html><body>no title here</body></html>",
			sourceURL: "https://example.com/posts/my-article",
			want:      "my-article",
		},
		{
			name:      "falls back to host when path is empty",
			doc:       "<html><body>no title here</body></html>",
			sourceURL: "https://example.com/",
			want:      "example.com",
		},
		{
			name:      "falls back to placeholder without a URL",
			doc:       "<html><body>no title here</body></html>",
			sourceURL: "",
			want:      readclip.DefaultTitle,
		},
		{
			name:      "falls back to placeholder for empty title element",
			doc:       "<title>   </title>",
			sourceURL: "",
			want:      readclip.DefaultTitle,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.ExtractTitle(tt.doc, tt.sourceURL))
		})
	}
}

func TestExtractBody(t *testing.T) {
	t.Parallel()

	t.Run("narrows to the article container", func(t *testing.T) {
		t.Parallel()

		doc := `<body><p>Outside noise.</p><article class="post"><p>Inside text.</p></article></body>`
		assert.Equal(t, "Inside text.", extract.ExtractBody(doc))
	})

	t.Run("falls back to the main container", func(t *testing.T) {
		t.Parallel()

		doc := `<body><p>Outside noise.</p><main><p>Main text.</p></main></body>`
		assert.Equal(t, "Main text.", extract.ExtractBody(doc))
	})

	t.Run("uses the whole document without a container", func(t *testing.T) {
		t.Parallel()

		doc := `<body><p>First.</p><p>Second.</p></body>`
		assert.Equal(t, "First.\n\nSecond.", extract.ExtractBody(doc))
	})

	t.Run("excludes script and style text", func(t *testing.T) {
		t.Parallel()

		doc := `<body><script type="text/javascript">
			var secret = "script text";
		</script><style>.x { color: red }</style><p>Visible text.</p></body>`

		body := extract.ExtractBody(doc)
		assert.Equal(t, "Visible text.", body)
		assert.NotContains(t, body, "script text")
		assert.NotContains(t, body, "color: red")
	})

	t.Run("strips nav, header, and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		doc := `<body><header>Site Header</header><nav><ul><li>Menu</li></ul></nav>` +
			`<p>Article text.</p><footer>All rights reserved</footer></body>`

		body := extract.ExtractBody(doc)
		assert.Equal(t, "Article text.", body)
	})

	t.Run("converts br and p tags to line breaks", func(t *testing.T) {
		t.Parallel()

		doc := `<p>Line one<br>Line two<br />Line three</p><p>Next paragraph</p>`
		assert.Equal(t, "Line one\nLine two\nLine three\n\nNext paragraph", extract.ExtractBody(doc))
	})

	t.Run("removes unknown inline tags but keeps their text", func(t *testing.T) {
		t.Parallel()

		doc := `<p>Some <em>emphasized</em> and <span class="x">styled</span> words.</p>`
		assert.Equal(t, "Some emphasized and styled words.", extract.ExtractBody(doc))
	})

	t.Run("returns empty string for empty documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.ExtractBody("<body><nav>menu</nav></body>"))
	})
}

func TestExtractor_WrapPlainText(t *testing.T) {
	t.Parallel()

	ext := extract.NewExtractor()

	t.Run("uses the first non-empty line as the title", func(t *testing.T) {
		t.Parallel()

		text := "Notes\nFirst line continues..."
		article := ext.WrapPlainText(text)

		assert.Equal(t, "Notes", article.Title)
		assert.Equal(t, readclip.SourceText, article.Source)
		assert.Empty(t, article.SourceURL)
		require.Len(t, article.Chapters, 1)
		assert.Equal(t, text, article.Chapters[0].Content)
		require.NoError(t, article.Validate())
	})

	t.Run("skips leading blank lines", func(t *testing.T) {
		t.Parallel()

		article := ext.WrapPlainText("\n   \nActual title\nbody")
		assert.Equal(t, "Actual title", article.Title)
	})

	t.Run("uses the placeholder for very long first lines", func(t *testing.T) {
		t.Parallel()

		long := ""
		for i := 0; i < 30; i++ {
			long += "word "
		}
		article := ext.WrapPlainText(long)
		assert.Equal(t, readclip.DefaultTitle, article.Title)
	})

	t.Run("wraps empty input into a valid minimal article", func(t *testing.T) {
		t.Parallel()

		article := ext.WrapPlainText("")
		assert.Equal(t, readclip.DefaultTitle, article.Title)
		require.Len(t, article.Chapters, 1)
		assert.Empty(t, article.Chapters[0].Content)
		require.NoError(t, article.Validate())
	})
}

// Compile-time verification that Extractor implements readclip.Extractor.
var _ readclip.Extractor = (*extract.Extractor)(nil)
