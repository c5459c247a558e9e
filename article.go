package readclip

import "time"

// SourceText is the provenance label for articles created from shared
// text rather than a URL.
const SourceText = "Shared Text"

// DefaultTitle is the fallback title used when no better title can be
// derived from the document or the source URL.
const DefaultTitle = "Web Article"

// Article is the normalized unit of extracted content handed off to the
// reader application. Articles are immutable value objects once
// constructed; the reading-progress cursors are owned and mutated only
// by the downstream reader.
//
// The JSON shape is the sole wire contract with the consuming
// application; field names and optionality must not change.
type Article struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Source    string     `json:"source"`
	SourceURL string     `json:"sourceUrl,omitempty"`
	Author    string     `json:"author,omitempty"`
	Chapters  []*Chapter `json:"chapters"`
	DateAdded time.Time  `json:"dateAdded"`

	LastReadChapter  int `json:"lastReadChapter"`
	LastReadPosition int `json:"lastReadPosition"`
}

// Chapter is a titled block of text within an Article. Exactly one
// chapter is produced by all current extraction paths; the slice exists
// for forward compatibility with multi-chapter sources.
type Chapter struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// HTMLContent is reserved for future rich rendering; the current
	// pipeline never sets it.
	HTMLContent string `json:"htmlContent,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
// Chapter content may be empty: the extractor rejects empty bodies with
// ENOCONTENT before an Article exists, while the plain-text path is
// allowed to wrap empty shared text into a minimal valid Article.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if len(a.Chapters) == 0 {
		return Errorf(EINVALID, "article requires at least one chapter")
	}
	for _, ch := range a.Chapters {
		if ch.ID == "" {
			return Errorf(EINVALID, "chapter ID required")
		}
	}
	return nil
}
