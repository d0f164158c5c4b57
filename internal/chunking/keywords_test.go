package chunking

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taekim-dev/resume-rag-engine/config"
)

func newTestExtractor() *KeywordExtractor {
	return NewKeywordExtractor(config.DefaultVocabulary(), 14)
}

func TestExtractVocabularyOrder(t *testing.T) {
	e := newTestExtractor()

	got := e.Extract("Built with Python, React, and Docker")
	expected := []string{"Python", "React", "Docker"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract() = %v, want %v", got, expected)
	}
}

func TestExtractBoundarySpacesPreventPartialMatches(t *testing.T) {
	e := newTestExtractor()

	// " ai " must not match inside "said".
	assert.NotContains(t, e.Extract("he said hello"), "AI")
	assert.Contains(t, e.Extract("worked on AI systems"), "AI")
}

func TestExtractSoftCategories(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		text     string
		expected string
	}{
		{"mentored three junior engineers", "Mentorship"},
		{"led the team, strong leadership", "Leadership"},
		{"designed the backend service", "Backend"},
		{"real-time updates over WebSocket", "Real-time"},
	}
	for _, tt := range tests {
		assert.Contains(t, e.Extract(tt.text), tt.expected, "text: %q", tt.text)
	}
}

func TestExtractDeduplicatesPreservingOrder(t *testing.T) {
	e := newTestExtractor()

	got := e.Extract("Python scripts calling python tooling with React and more Python")
	expected := []string{"Python", "React"}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract() = %v, want %v", got, expected)
	}
}

func TestExtractRespectsMaxKeywords(t *testing.T) {
	e := NewKeywordExtractor(config.DefaultVocabulary(), 3)

	got := e.Extract("Python TypeScript React Docker AWS MongoDB leading real-time backend APIs")
	assert.Len(t, got, 3)
}

func TestExtractIdempotent(t *testing.T) {
	e := newTestExtractor()
	text := "Built real-time backend with FastAPI, Socket.IO and PostgreSQL, mentored interns"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(first), 14)
}

func TestExtractNoMatches(t *testing.T) {
	e := newTestExtractor()
	assert.Empty(t, e.Extract("gardening and watercolor painting"))
}
