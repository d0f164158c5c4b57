// Package segment turns raw extracted résumé text into sections and entity
// blocks. All parsing downstream of Normalize assumes normalized input;
// PDF-to-text extraction is noisy and re-exporting the same document can
// otherwise shift spacing enough to break header and entity matching.
package segment

import (
	"regexp"
	"strings"
)

var spacingRegex = regexp.MustCompile(`[ \t]+`)

// Normalize cleans raw document text into a canonical form: carriage returns
// become newlines, runs of spaces and tabs collapse to a single space, and
// outer whitespace is trimmed. Deterministic for identical input.
func Normalize(raw string) string {
	txt := strings.ReplaceAll(raw, "\r", "\n")
	txt = spacingRegex.ReplaceAllString(txt, " ")
	return strings.TrimSpace(txt)
}

// ToLines converts raw text into the ordered sequence of non-empty lines the
// rest of the pipeline operates on. Empty or whitespace-only input yields an
// empty slice, not an error.
func ToLines(raw string) []string {
	txt := Normalize(raw)
	if txt == "" {
		return nil
	}

	lines := make([]string, 0)
	for _, ln := range strings.Split(txt, "\n") {
		ln = strings.TrimRight(ln, " \t")
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
