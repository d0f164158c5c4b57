package indexing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/internal/tokenizer"
)

const testResume = `Tae Kim
tae@example.com
github.com/taekim
PROFESSIONAL EXPERIENCE
Acme Corp | Software Engineer | Jun 2022 - Present
• Built REST API with Python and FastAPI
• Mentored two junior engineers on backend design
Globex | Backend Intern | 2021
• Implemented WebSocket notifications with Socket.IO
PROJECTS
Portfolio Chatbot | GPT, ChromaDB, FastAPI
• Answers questions about this resume using RAG
SKILLS
languages: python, typescript, go
infrastructure: docker, aws, postgres
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(config.Default(), config.DefaultVocabulary())
	require.NoError(t, err)
	return svc
}

func TestNewServiceRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.OverlapRatio = 1.5 // derived overlap would exceed chunk size

	_, err := NewService(cfg, config.DefaultVocabulary())
	assert.Error(t, err)
}

func TestBuildIndexEmptyInput(t *testing.T) {
	svc := newTestService(t)

	for _, input := range []string{"", "   \n\t  "} {
		chunks, inv, err := svc.BuildIndex(input, "empty.pdf")
		require.NoError(t, err)
		assert.Equal(t, 0, chunks.Len())
		assert.Equal(t, 0, inv.TermCount())
	}
}

func TestBuildIndexChunkInvariants(t *testing.T) {
	svc := newTestService(t)

	chunks, _, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)
	require.Greater(t, chunks.Len(), 0)

	seen := make(map[string]struct{})
	for _, c := range chunks.Chunks {
		// Unique, stable ids in build order.
		_, dup := seen[c.ID]
		assert.False(t, dup, "duplicate chunk id %s", c.ID)
		seen[c.ID] = struct{}{}

		// Context marker prefix and non-empty text.
		assert.True(t, strings.HasPrefix(c.Text, "Section: "), "chunk %s missing context marker", c.ID)
		assert.Contains(t, c.Text, "| Entity: ")
		assert.NotEmpty(t, strings.TrimSpace(c.Text))

		assert.Equal(t, "resume.pdf", c.Metadata.Source)
		assert.LessOrEqual(t, len(c.Metadata.Keywords), config.Default().MaxKeywords)
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	svc := newTestService(t)

	chunksA, invA, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)
	chunksB, invB, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, chunksA.Chunks, chunksB.Chunks)
	assert.Equal(t, invA.Terms, invB.Terms)
}

func TestBuildIndexSharedBlockMetadata(t *testing.T) {
	svc := newTestService(t)

	chunks, _, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)

	// All chunks of one entity block share summary, section, and entity.
	byEntity := make(map[string][]string)
	for _, c := range chunks.Chunks {
		key := c.Metadata.Section + "/" + c.Metadata.Entity
		byEntity[key] = append(byEntity[key], c.Metadata.SummaryContext)
	}
	for key, summaries := range byEntity {
		for _, s := range summaries {
			assert.Equal(t, summaries[0], s, "summary mismatch within block %s", key)
		}
	}
}

func TestBuildIndexSectionAndEntityAssignment(t *testing.T) {
	svc := newTestService(t)

	chunks, _, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)

	entities := make(map[string]string)
	for _, c := range chunks.Chunks {
		entities[c.Metadata.Entity] = c.Metadata.Section
	}

	assert.Equal(t, "PROFESSIONAL EXPERIENCE", entities["Acme Corp"])
	assert.Equal(t, "PROFESSIONAL EXPERIENCE", entities["Globex"])
	assert.Equal(t, "PROJECTS", entities["Portfolio Chatbot"])
	// SKILLS has no entity-header-like line: single General block.
	assert.Equal(t, "SKILLS", entities["General"])
	// Contact preamble routed into SOCIALS.
	assert.Contains(t, entities, "General")
	sawSocials := false
	for _, c := range chunks.Chunks {
		if c.Metadata.Section == "SOCIALS" {
			sawSocials = true
		}
	}
	assert.True(t, sawSocials, "expected a SOCIALS section from contact preamble")
}

func TestBuildIndexKeywordsFromPrefixedText(t *testing.T) {
	svc := newTestService(t)

	// The entity name itself matches a keyword variant, so the context
	// marker must contribute to keyword extraction.
	text := "PROJECTS\nReact Dashboard | 2023\n• Charts for the operations team\n"
	chunks, _, err := svc.BuildIndex(text, "resume.pdf")
	require.NoError(t, err)
	require.Greater(t, chunks.Len(), 0)

	assert.Contains(t, chunks.Chunks[0].Metadata.Keywords, "React")
}

func TestBuildIndexInvertedIndexConsistency(t *testing.T) {
	svc := newTestService(t)

	chunks, inv, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)

	// Every posting refers to an existing chunk that actually contains the
	// term in its text or keyword metadata.
	for term, postings := range inv.Terms {
		for _, p := range postings {
			c, ok := chunks.Get(p.ChunkID)
			require.True(t, ok, "posting for %q points at missing chunk %s", term, p.ChunkID)

			inText := false
			for _, tok := range tokenizer.Tokenize(c.Text) {
				if tok == term {
					inText = true
					break
				}
			}
			if !inText {
				for _, kw := range c.Metadata.Keywords {
					for _, tok := range tokenizer.Tokenize(kw) {
						if tok == term {
							inText = true
						}
					}
				}
			}
			assert.True(t, inText, "term %q posted to chunk %s but not present", term, p.ChunkID)
			assert.Greater(t, p.TermFrequency, 0)
		}
	}

	// Keyword metadata is indexed: "postgres" appears in SKILLS text, so its
	// canonical "PostgreSQL" must be findable via the keyword token.
	assert.NotEmpty(t, inv.Postings("postgresql"))
}

func TestBuildIndexPostingListsOrdered(t *testing.T) {
	svc := newTestService(t)

	_, inv, err := svc.BuildIndex(testResume, "resume.pdf")
	require.NoError(t, err)

	for term, postings := range inv.Terms {
		for i := 1; i < len(postings); i++ {
			assert.Less(t, postings[i-1].ChunkID, postings[i].ChunkID,
				"posting list for %q not ordered", term)
		}
	}
}
