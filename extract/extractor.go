// Package extract implements the pattern-based article extraction
// pipeline. It turns raw HTML plus a source URL into a clean title and
// body text through an ordered sequence of pure text transforms:
// container narrowing, boilerplate removal, tag stripping, entity
// decoding, and whitespace normalization. No DOM is built; realistic
// news/blog article markup is the target, not arbitrary HTML5.
package extract

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/readclip"
	"github.com/google/uuid"
)

// Ensure Extractor implements readclip.Extractor at compile time.
var _ readclip.Extractor = (*Extractor)(nil)

// Extractor is the regex-pipeline implementation of readclip.Extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	articleRe = regexp.MustCompile(`(?is)<article(?:\s[^>]*)?>(.*?)</article>`)
	mainRe    = regexp.MustCompile(`(?is)<main(?:\s[^>]*)?>(.*?)</main>`)

	brRe     = regexp.MustCompile(`(?i)<br\b[^>]*>`)
	pCloseRe = regexp.MustCompile(`(?i)</p>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)

	// Non-content regions stripped wholesale before tag removal.
	boilerplateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<nav\b[^>]*>.*?</nav>`),
		regexp.MustCompile(`(?is)<footer\b[^>]*>.*?</footer>`),
		regexp.MustCompile(`(?is)<header\b[^>]*>.*?</header>`),
	}
)

// ExtractFromURL extracts a normalized Article from raw HTML fetched
// from sourceURL. Returns EPARSING if the bytes are not valid UTF-8,
// ENOCONTENT if the pipeline yields an empty body.
func (e *Extractor) ExtractFromURL(raw []byte, sourceURL string) (*readclip.Article, error) {
	if !utf8.Valid(raw) {
		return nil, readclip.Errorf(readclip.EPARSING, "content from %s is not decodable as text", sourceURL)
	}

	doc := string(raw)
	title := ExtractTitle(doc, sourceURL)
	body := ExtractBody(doc)
	if body == "" {
		return nil, readclip.Errorf(readclip.ENOCONTENT, "no readable content found at %s", sourceURL)
	}

	return newArticle(title, body, sourceLabel(sourceURL), sourceURL), nil
}

// WrapPlainText wraps literal shared text into a single-chapter Article
// without any HTML processing. The first non-empty line becomes the
// title when it is under 100 characters; the content is kept verbatim.
func (e *Extractor) WrapPlainText(text string) *readclip.Article {
	title := readclip.DefaultTitle
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) < 100 {
			title = line
		}
		break
	}

	return newArticle(title, text, readclip.SourceText, "")
}

// ExtractTitle derives the article title from the document. The default
// comes from the source URL (last path segment, else host); a <title>
// element overrides it; site-name suffixes after " | " or a late " - "
// are stripped; entities are decoded last.
func ExtractTitle(doc, sourceURL string) string {
	title := defaultTitle(sourceURL)

	if m := titleRe.FindStringSubmatch(doc); m != nil {
		title = strings.TrimSpace(m[1])
	}

	if i := strings.Index(title, " | "); i >= 0 {
		title = title[:i]
	}
	// Only strip a " - " suffix when the remaining prefix is long
	// enough to be a real title; short titles legitimately contain
	// hyphens near the start.
	if i := strings.LastIndex(title, " - "); i > 10 {
		title = title[:i]
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = readclip.DefaultTitle
	}

	return DecodeEntities(title)
}

// ExtractBody runs the ordered body pipeline over the full document
// text and returns the normalized plain-text body, which is empty when
// the document holds no readable content. Pass order matters: later
// passes assume earlier ones already ran.
func ExtractBody(doc string) string {
	working := doc

	// Narrow to the primary content container when one exists.
	if m := articleRe.FindStringSubmatch(working); m != nil {
		working = m[1]
	} else if m := mainRe.FindStringSubmatch(working); m != nil {
		working = m[1]
	}

	for _, re := range boilerplateRes {
		working = re.ReplaceAllString(working, "")
	}

	working = brRe.ReplaceAllString(working, "\n")
	working = pCloseRe.ReplaceAllString(working, "\n\n")
	working = tagRe.ReplaceAllString(working, "")

	working = DecodeEntities(working)
	return NormalizeWhitespace(working)
}

// defaultTitle derives a fallback title from the source URL: the last
// path segment, else the host, else the generic placeholder.
func defaultTitle(sourceURL string) string {
	if sourceURL == "" {
		return readclip.DefaultTitle
	}
	u, err := url.Parse(sourceURL)
	if err != nil {
		return readclip.DefaultTitle
	}

	seg := strings.Trim(u.Path, "/")
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if seg != "" {
		return seg
	}
	if u.Host != "" {
		return u.Host
	}
	return readclip.DefaultTitle
}

// sourceLabel returns the display host name for a URL, with a leading
// "www." stripped.
func sourceLabel(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		return sourceURL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// newArticle assembles a single-chapter Article with fresh IDs, the
// extraction timestamp, and zeroed reading cursors.
func newArticle(title, content, source, sourceURL string) *readclip.Article {
	return &readclip.Article{
		ID:        uuid.New().String(),
		Title:     title,
		Source:    source,
		SourceURL: sourceURL,
		Chapters: []*readclip.Chapter{{
			ID:      uuid.New().String(),
			Title:   title,
			Content: content,
		}},
		DateAdded: time.Now().UTC(),
	}
}
