package chunking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSummarizer() *ContextSummarizer {
	return NewContextSummarizer(newTestExtractor(), "Tae")
}

func TestSummarizeNamedEntity(t *testing.T) {
	s := newTestSummarizer()

	got := s.Summarize("EXPERIENCE", "Acme Corp", "Built REST API with Python and Docker")

	assert.Equal(t, "Tae's work related to Acme Corp focused on Python, Docker, REST, Backend.", got)
}

func TestSummarizeGeneralFallback(t *testing.T) {
	s := newTestSummarizer()

	got := s.Summarize("SKILLS", "General", "gardening notes")

	assert.Equal(t, "Tae's skills details.", got)
}

func TestSummarizeRendersAtMostFourKeywords(t *testing.T) {
	s := newTestSummarizer()

	got := s.Summarize("PROJECTS", "Chatbot", "Python TypeScript React Docker AWS MongoDB")

	assert.Equal(t, "Tae's work related to Chatbot focused on Python, TypeScript, React, MongoDB.", got)
}

func TestSummarizeDeterministic(t *testing.T) {
	s := newTestSummarizer()

	a := s.Summarize("EXPERIENCE", "Acme Corp", "Built real-time backend with FastAPI")
	b := s.Summarize("EXPERIENCE", "Acme Corp", "Built real-time backend with FastAPI")

	assert.Equal(t, a, b)
}
