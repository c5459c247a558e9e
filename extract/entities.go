package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedReplacer substitutes the named HTML character references the
// pipeline understands. strings.Replacer works in a single
// left-to-right pass and never rescans replaced text, so "&amp;lt;"
// decodes to "&lt;" and stops there. "&amp;" is listed last so it
// cannot shadow the longer references.
var namedReplacer = strings.NewReplacer(
	"&nbsp;", "\u00a0",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "…",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&copy;", "©",
	"&reg;", "®",
	"&trade;", "™",
	"&bull;", "•",
	"&middot;", "·",
	"&amp;", "&",
)

var (
	decEntityRe = regexp.MustCompile(`&#([0-9]+);`)
	hexEntityRe = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
)

// DecodeEntities converts named, decimal (&#8212;), and hexadecimal
// (&#x2014;) HTML character references into literal characters. An
// entity whose digits do not resolve to a valid code point is left
// undecoded and the pass continues with the next match; decoding is
// therefore total and terminates in one scan per form even on
// malformed input like "&#zz;".
func DecodeEntities(s string) string {
	s = namedReplacer.Replace(s)
	s = decEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		return decodeCodePoint(m, m[2:len(m)-1], 10)
	})
	s = hexEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		return decodeCodePoint(m, m[3:len(m)-1], 16)
	})
	return s
}

// decodeCodePoint resolves one numeric reference, returning the
// original match unchanged when the digits overflow or name an invalid
// code point (negative, surrogate, or beyond U+10FFFF).
func decodeCodePoint(match, digits string, base int) string {
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return match
	}
	return string(rune(n))
}
