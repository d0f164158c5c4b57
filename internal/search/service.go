// Package search implements query-time retrieval: candidate generation via
// the inverted index, heuristic scoring, diversity reranking, and top-k
// selection. A Service reads one immutable snapshot and is safe for
// unlimited concurrent use.
package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taekim-dev/resume-rag-engine/index"
	"github.com/taekim-dev/resume-rag-engine/internal/tokenizer"
	"github.com/taekim-dev/resume-rag-engine/model"
	"github.com/taekim-dev/resume-rag-engine/services"
	"github.com/taekim-dev/resume-rag-engine/store"
)

// Scoring weights. The source material does not pin these numerically; the
// values below rank keyword matches as higher-precision signals than
// free-text overlap, with metadata anchors below that, and are validated by
// the ranking properties in the package tests.
const (
	// keywordMatchWeight applies per query token matching a canonical
	// keyword token of the chunk.
	keywordMatchWeight = 2.5
	// phraseMatchWeight applies at most once per chunk when a configured
	// phrase term appears in both query and chunk text.
	phraseMatchWeight = 2.0
	// entityAnchorWeight applies once when query tokens overlap the chunk's
	// entity name, supporting entity-scoped questions.
	entityAnchorWeight = 1.5
	// sectionMatchWeight applies once when query tokens overlap the chunk's
	// section name.
	sectionMatchWeight = 0.5
)

const (
	defaultTopK    = 6
	maxTopK        = 12
	maxCandidates  = 80
	maxPerEntity   = 2
	previewRuneCap = 500
)

// Service scores and ranks chunks against queries. It holds read references
// to one snapshot's components and never mutates them.
type Service struct {
	inv         *index.InvertedIndex
	chunks      *store.ChunkStore
	phraseTerms []string
}

// NewService creates a retriever over a built snapshot.
func NewService(inv *index.InvertedIndex, chunks *store.ChunkStore, phraseTerms []string) (*Service, error) {
	if inv == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if chunks == nil {
		return nil, fmt.Errorf("chunk store cannot be nil")
	}
	return &Service{inv: inv, chunks: chunks, phraseTerms: phraseTerms}, nil
}

// scoredChunk pairs a candidate chunk with its score and the reasons it
// matched, for debug logging and tests.
type scoredChunk struct {
	chunk   model.Chunk
	score   float64
	reasons []string
}

// Retrieve ranks chunks against the query and returns the top-k evidence.
// topK is clamped to [1, 12], with 6 as the default for non-positive values.
// A query with no matching terms returns empty evidence; that is a normal
// outcome, not an error.
func (s *Service) Retrieve(query string, topK int) (services.RetrievalResult, error) {
	start := time.Now()

	if topK <= 0 {
		topK = defaultTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}

	result := services.RetrievalResult{
		QueryID:  uuid.New().String(),
		Query:    query,
		TopK:     topK,
		Evidence: make([]services.Evidence, 0),
	}

	qTokens := tokenizer.Tokenize(query)
	if len(qTokens) == 0 {
		result.Took = time.Since(start).Milliseconds()
		return result, nil
	}
	qSet := make(map[string]struct{}, len(qTokens))
	for _, t := range qTokens {
		qSet[t] = struct{}{}
	}

	scored := s.scoreCandidates(query, qTokens, qSet)

	// Score descending, ties by chunk id ascending: stable, deterministic.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].chunk.ID < scored[j].chunk.ID
	})

	for _, sc := range diversify(scored, topK, maxPerEntity) {
		result.Evidence = append(result.Evidence, services.Evidence{
			ID:          sc.chunk.ID,
			Score:       sc.score,
			Section:     sc.chunk.Metadata.Section,
			Entity:      sc.chunk.Metadata.Entity,
			Keywords:    sc.chunk.Metadata.Keywords,
			TextPreview: preview(sc.chunk.Text),
		})
	}

	result.Took = time.Since(start).Milliseconds()
	return result, nil
}

// scoreCandidates generates candidates from the inverted index and scores
// each one. Chunks with zero overlap are excluded.
func (s *Service) scoreCandidates(query string, qTokens []string, qSet map[string]struct{}) []scoredChunk {
	candidateIDs := s.candidates(qTokens)

	normalizedQuery := tokenizer.NormalizePhrases(query)

	scored := make([]scoredChunk, 0, len(candidateIDs))
	for _, cid := range candidateIDs {
		chunk, ok := s.chunks.Get(cid)
		if !ok || chunk.Text == "" {
			continue
		}

		var score float64
		var reasons []string

		// Raw term overlap between query tokens and chunk text.
		overlap := 0
		textSet := tokenizer.TokenSet(chunk.Text)
		for t := range qSet {
			if _, hit := textSet[t]; hit {
				overlap++
			}
		}
		score += float64(overlap)
		if overlap > 0 {
			reasons = append(reasons, fmt.Sprintf("token_overlap(%d)", overlap))
		}

		// Keyword bonus: canonical keywords are higher-precision signals,
		// and let abstract queries hit chunks whose raw text never spells
		// the term out (e.g. "postgresql" vs "postgres").
		kwOverlap := 0
		kwSet := make(map[string]struct{})
		for _, kw := range chunk.Metadata.Keywords {
			for _, tok := range tokenizer.Tokenize(kw) {
				kwSet[tok] = struct{}{}
			}
		}
		for t := range qSet {
			if _, hit := kwSet[t]; hit {
				kwOverlap++
			}
		}
		if kwOverlap > 0 {
			score += keywordMatchWeight * float64(kwOverlap)
			reasons = append(reasons, fmt.Sprintf("keyword_overlap(%d)", kwOverlap))
		}

		// Phrase bonus, at most once per chunk.
		normalizedText := tokenizer.NormalizePhrases(chunk.Text)
		for _, term := range s.phraseTerms {
			if strings.Contains(normalizedQuery, term) && strings.Contains(normalizedText, term) {
				score += phraseMatchWeight
				reasons = append(reasons, fmt.Sprintf("phrase_match(%s)", term))
				break
			}
		}

		// Entity anchor: token overlap rather than substring containment,
		// which avoids false positives like "wa" inside "Washington".
		if tokensOverlap(qSet, chunk.Metadata.Entity) {
			score += entityAnchorWeight
			reasons = append(reasons, "entity_anchor")
		}

		// Section match for section-scoped questions.
		if tokensOverlap(qSet, chunk.Metadata.Section) {
			score += sectionMatchWeight
			reasons = append(reasons, "section_match")
		}

		if score > 0 {
			scored = append(scored, scoredChunk{chunk: chunk, score: score, reasons: reasons})
		}
	}
	return scored
}

// candidates collects chunk ids posted under any query token, preserving
// first-seen order and capped at maxCandidates. When nothing matches it
// falls back to scanning every chunk; the corpus is one résumé, so a full
// scan stays cheap.
func (s *Service) candidates(qTokens []string) []string {
	ids := make([]string, 0, maxCandidates)
	seen := make(map[string]struct{})

	for _, tok := range qTokens {
		for _, p := range s.inv.Postings(tok) {
			if _, dup := seen[p.ChunkID]; dup {
				continue
			}
			seen[p.ChunkID] = struct{}{}
			ids = append(ids, p.ChunkID)
			if len(ids) >= maxCandidates {
				return ids
			}
		}
	}

	if len(ids) == 0 {
		for _, c := range s.chunks.Chunks {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func tokensOverlap(qSet map[string]struct{}, text string) bool {
	if text == "" {
		return false
	}
	for _, tok := range tokenizer.Tokenize(text) {
		if _, hit := qSet[tok]; hit {
			return true
		}
	}
	return false
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRuneCap {
		return text
	}
	return string(runes[:previewRuneCap])
}
