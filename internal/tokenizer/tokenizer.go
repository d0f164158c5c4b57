// Package tokenizer provides the shared tokenization used for both index
// construction and query processing. Indexing and retrieval must tokenize
// identically or term lookups silently miss.
package tokenizer

import (
	"regexp"
	"strings"
)

// tokenRegex matches word-like runs, keeping tech-relevant punctuation so
// tokens like "node.js", "c++" and "c#" survive tokenization.
var tokenRegex = regexp.MustCompile(`[A-Za-z0-9.+#]+`)

// minTokenLength drops single-character noise while keeping short tech
// tokens like "ai" and "go".
const minTokenLength = 2

// unicodeDashRegex matches the unicode hyphen/dash family (en dash, em dash,
// minus sign, ...) that PDF extraction substitutes for plain hyphens.
var unicodeDashRegex = regexp.MustCompile("[‐-―−]")

var whitespaceRegex = regexp.MustCompile(`\s+`)

var realTimeRegex = regexp.MustCompile(`(?i)\breal\s+time\b`)

// Tokenize converts text into lowercase search terms. Trailing dots are
// stripped so "AWS." and "aws" collide on the same term, but interior dots
// are preserved ("socket.io", "node.js").
func Tokenize(text string) []string {
	matches := tokenRegex.FindAllString(text, -1)

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tok := strings.ToLower(strings.Trim(m, "."))
		if len(tok) >= minTokenLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TokenSet returns the unique tokens of text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// NormalizePhrases canonicalizes text for substring phrase matching:
// unicode dashes become "-", whitespace collapses, "real time" becomes
// "real-time", and everything is lowercased. Query and chunk text must run
// through the same normalization before comparison.
func NormalizePhrases(text string) string {
	text = unicodeDashRegex.ReplaceAllString(text, "-")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	text = realTimeRegex.ReplaceAllString(text, "real-time")
	return strings.ToLower(text)
}
