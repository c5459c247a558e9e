package mock

import "github.com/fwojciec/readclip"

var _ readclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readclip.Extractor.
type Extractor struct {
	ExtractFromURLFn func(raw []byte, sourceURL string) (*readclip.Article, error)
	WrapPlainTextFn  func(text string) *readclip.Article
}

func (e *Extractor) ExtractFromURL(raw []byte, sourceURL string) (*readclip.Article, error) {
	return e.ExtractFromURLFn(raw, sourceURL)
}

func (e *Extractor) WrapPlainText(text string) *readclip.Article {
	return e.WrapPlainTextFn(text)
}
