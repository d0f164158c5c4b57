package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taekim-dev/resume-rag-engine/config"
)

func testVocabulary() *config.Vocabulary {
	vocab := config.DefaultVocabulary()
	vocab.SectionHeaders = append([]string{"EXPERIENCE"}, vocab.SectionHeaders...)
	return vocab
}

func TestCanonicalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  TECHNICAL/SOFT SKILLS  ", "TECHNICAL / SOFT SKILLS"},
		{"TECHNICAL  /  SOFT   SKILLS", "TECHNICAL / SOFT SKILLS"},
		{"PROJECTS", "PROJECTS"},
	}
	for _, tt := range tests {
		if got := CanonicalizeHeader(tt.input); got != tt.expected {
			t.Errorf("CanonicalizeHeader(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSplitBasic(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	lines := []string{
		"EXPERIENCE",
		"Acme Corp | Engineer | 2022",
		"• Built REST API with Python",
	}
	sections := sp.Split(lines)

	require.Len(t, sections, 1)
	assert.Equal(t, "EXPERIENCE", sections[0].Name)
	assert.Equal(t, []string{"Acme Corp | Engineer | 2022", "• Built REST API with Python"}, sections[0].Lines)
}

func TestSplitHeaderMatchingIsCaseAndSpacingInsensitive(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	sections := sp.Split([]string{"technical/soft skills", "Python, Go, Docker"})

	require.Len(t, sections, 1)
	// First vocabulary entry that matches wins; the vocabulary spelling is kept.
	assert.Equal(t, "TECHNICAL / SOFT SKILLS", sections[0].Name)
}

func TestSplitUnknownFallback(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	sections := sp.Split([]string{"Some orphan line", "Another orphan"})

	require.Len(t, sections, 1)
	assert.Equal(t, UnknownSection, sections[0].Name)
	assert.Len(t, sections[0].Lines, 2)
}

func TestSplitEmptyUnknownOmitted(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	sections := sp.Split([]string{"EXPERIENCE", "Acme Corp | Engineer | 2022"})

	for _, sec := range sections {
		assert.NotEqual(t, UnknownSection, sec.Name)
	}
}

func TestSplitContactPreambleBecomesSocials(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	lines := []string{
		"Tae Kim",
		"tae@example.com",
		"linkedin.com/in/taekim",
		"EXPERIENCE",
		"Acme Corp | Engineer | 2022",
	}
	sections := sp.Split(lines)

	byName := make(map[string][]string)
	for _, sec := range sections {
		byName[sec.Name] = sec.Lines
	}

	require.Contains(t, byName, SocialsSection)
	// The leading name line heads SOCIALS, followed by the contact lines.
	assert.Equal(t, []string{"Tae Kim", "tae@example.com", "linkedin.com/in/taekim"}, byName[SocialsSection])
	assert.Equal(t, []string{"Acme Corp | Engineer | 2022"}, byName["EXPERIENCE"])
}

func TestSplitNonContactPreambleMergesIntoFirstSection(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	lines := []string{
		"Objective: build reliable systems",
		"EXPERIENCE",
		"Acme Corp | Engineer | 2022",
	}
	sections := sp.Split(lines)

	require.Len(t, sections, 1)
	assert.Equal(t, "EXPERIENCE", sections[0].Name)
	assert.Equal(t, []string{"Objective: build reliable systems", "Acme Corp | Engineer | 2022"}, sections[0].Lines)
}

func TestSplitPreservesDocumentOrder(t *testing.T) {
	sp := NewSectionSplitter(testVocabulary())

	lines := []string{
		"EDUCATION",
		"State University",
		"EXPERIENCE",
		"Acme Corp | Engineer | 2022",
		"PROJECTS",
		"Chatbot | GPT, FastAPI",
	}
	sections := sp.Split(lines)

	require.Len(t, sections, 3)
	assert.Equal(t, "EDUCATION", sections[0].Name)
	assert.Equal(t, "EXPERIENCE", sections[1].Name)
	assert.Equal(t, "PROJECTS", sections[2].Name)
}

func TestIsContactLine(t *testing.T) {
	assert.True(t, IsContactLine("tae@example.com"))
	assert.True(t, IsContactLine("github.com/taekim"))
	assert.True(t, IsContactLine("See LinkedIn.com/in/tae-kim"))
	assert.False(t, IsContactLine("Built REST API with Python"))
}
