package textextract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	rePageNum    = regexp.MustCompile(`(?i)\bpage\s+\d+\b`)
	rePageOfPage = regexp.MustCompile(`\b\d+\s*/\s*\d+\b`)
	reSeparators = regexp.MustCompile(`[-_=]{3,}`)
	reMultiDot   = regexp.MustCompile(`\.{2,}`)
	reSpaces     = regexp.MustCompile(`[ \t\r\f\v]+`)
	reBlankLines = regexp.MustCompile(`\n\s*\n+`)
)

// Normalize collapses whitespace, strips page-break artifacts, and canonizes
// the encoding to NFC so every downstream stage sees one text representation.
func Normalize(raw string) string {
	text := norm.NFC.String(raw)

	text = rePageNum.ReplaceAllString(text, "")
	text = rePageOfPage.ReplaceAllString(text, "")
	text = reSeparators.ReplaceAllString(text, "")
	text = reMultiDot.ReplaceAllString(text, ".")

	text = reSpaces.ReplaceAllString(text, " ")
	text = reBlankLines.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
