package chunking

import (
	"regexp"
	"strings"

	"github.com/taekim-dev/resume-rag-engine/config"
)

// Soft-category patterns: broad substring families that tag a chunk with a
// high-level capability even when no vocabulary variant matches.
var (
	mentorRegex     = regexp.MustCompile(`(?i)\bmentor(ed|ship)?\b`)
	leadershipRegex = regexp.MustCompile(`(?i)\blead(ing|ership)?\b`)
	backendRegex    = regexp.MustCompile(`(?i)\bbackend\b|\bapi\b|\brest\b`)
	realtimeRegex   = regexp.MustCompile(`(?i)\breal[- ]time\b|\bsocket\b|\bwebsocket\b`)
)

// KeywordExtractor derives canonical keyword tags from chunk text via a
// controlled vocabulary. Keywords give retrieval a stable handle for
// abstract questions ("backend frameworks") even when the exact phrase is
// absent from the text.
type KeywordExtractor struct {
	vocab       *config.Vocabulary
	maxKeywords int
}

// NewKeywordExtractor creates an extractor bound to a vocabulary and a
// per-call keyword cap.
func NewKeywordExtractor(vocab *config.Vocabulary, maxKeywords int) *KeywordExtractor {
	return &KeywordExtractor{vocab: vocab, maxKeywords: maxKeywords}
}

// Extract returns the canonical keywords found in text: vocabulary variants
// first in vocabulary scan order, then soft categories. The result is
// deduplicated preserving first-seen order and truncated to the configured
// maximum. Extract is idempotent.
func (e *KeywordExtractor) Extract(text string) []string {
	return e.ExtractN(text, e.maxKeywords)
}

// ExtractN is Extract with an explicit cap, used by the summarizer which
// wants fewer keywords than the per-chunk maximum.
func (e *KeywordExtractor) ExtractN(text string, maxKeywords int) []string {
	// Boundary spaces let space-padded variants like " ai " match the word
	// without matching the substring inside "said".
	lower := " " + strings.ToLower(text) + " "

	found := make([]string, 0)
	for _, kw := range e.vocab.Keywords {
		for _, v := range kw.Variants {
			if strings.Contains(lower, v) {
				found = append(found, kw.Canonical)
				break
			}
		}
	}

	if mentorRegex.MatchString(text) {
		found = append(found, "Mentorship")
	}
	if leadershipRegex.MatchString(text) {
		found = append(found, "Leadership")
	}
	if backendRegex.MatchString(text) {
		found = append(found, "Backend")
	}
	if realtimeRegex.MatchString(text) {
		found = append(found, "Real-time")
	}

	seen := make(map[string]struct{}, len(found))
	out := make([]string, 0, len(found))
	for _, k := range found {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
		if len(out) >= maxKeywords {
			break
		}
	}
	return out
}
