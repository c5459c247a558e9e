package extract

import (
	"regexp"
	"strings"
)

var (
	// Whitespace-only lines are dropped together with their newline;
	// genuinely empty lines survive as paragraph separators.
	blankLineRe  = regexp.MustCompile(`(?m)^[ \t]+\n`)
	spaceRunRe   = regexp.MustCompile(`[ \t]{2,}`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace cleans up the spacing artifacts left behind by
// tag stripping: whitespace-only lines are removed, each line is
// trimmed of horizontal whitespace, runs of spaces collapse to one,
// runs of blank lines collapse to a single paragraph break, and the
// whole text is trimmed. The function is idempotent.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = blankLineRe.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = spaceRunRe.ReplaceAllString(s, " ")
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
