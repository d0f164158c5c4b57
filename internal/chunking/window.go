// Package chunking slices entity-block text into overlapping retrievable
// spans and attaches keyword and summary metadata to them.
package chunking

import (
	"strings"
	"unicode"
)

// SlidingWindow cuts text into overlapping windows of roughly size
// characters. The step between window starts is size-overlap; when the right
// boundary lands inside a word it extends forward to the next non-word rune
// so tokens are never truncated. Spans are trimmed and empty spans dropped.
//
// Callers must validate overlap < size up front (config.Validate does);
// the step floor here only guards against a degenerate loop.
func SlidingWindow(text string, size, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	n := len(runes)
	step := size - overlap
	if step < 1 {
		step = 1
	}

	chunks := make([]string, 0, n/step+1)
	i := 0
	for i < n {
		j := i + size
		if j > n {
			j = n
		}

		// Extend past a word boundary rather than cutting mid-token.
		if j < n && isWordRune(runes[j-1]) {
			for j < n && isWordRune(runes[j]) {
				j++
			}
		}

		if chunk := strings.TrimSpace(string(runes[i:j])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if j >= n {
			break
		}
		i += step
	}
	return chunks
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
