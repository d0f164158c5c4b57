package chunking

import (
	"fmt"
	"strings"

	"github.com/taekim-dev/resume-rag-engine/internal/segment"
)

// summaryKeywordCap bounds how many keywords the summarizer considers and
// renders. Six are extracted, at most four appear in the sentence.
const (
	summaryExtractCap = 6
	summaryRenderCap  = 4
)

// ContextSummarizer produces the one-line semantic summary each entity block
// carries. Every chunk cut from a block inherits the block's summary, giving
// the downstream synthesis step a high-level hint about what the block is.
type ContextSummarizer struct {
	extractor *KeywordExtractor
	subject   string
}

// NewContextSummarizer creates a summarizer. subject is the résumé owner's
// name as it should appear in summaries.
func NewContextSummarizer(extractor *KeywordExtractor, subject string) *ContextSummarizer {
	return &ContextSummarizer{extractor: extractor, subject: subject}
}

// Summarize composes the summary line for one entity block. Deterministic
// given identical inputs.
func (s *ContextSummarizer) Summarize(section, entity, content string) string {
	kws := s.extractor.ExtractN(content, summaryExtractCap)

	var base string
	if entity == segment.GeneralEntity {
		base = fmt.Sprintf("%s's %s details", s.subject, strings.ToLower(section))
	} else {
		base = fmt.Sprintf("%s's work related to %s", s.subject, entity)
	}

	if len(kws) == 0 {
		return base + "."
	}
	if len(kws) > summaryRenderCap {
		kws = kws[:summaryRenderCap]
	}
	return fmt.Sprintf("%s focused on %s.", base, strings.Join(kws, ", "))
}
