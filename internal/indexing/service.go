// Package indexing orchestrates the build-time pipeline: normalize, split
// sections, group entities, chunk, tag, summarize, and assemble the inverted
// index. One build is a single-threaded batch pass over one document; its
// outputs are immutable value objects.
package indexing

import (
	"fmt"
	"log"

	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/index"
	"github.com/taekim-dev/resume-rag-engine/internal/chunking"
	internalErrors "github.com/taekim-dev/resume-rag-engine/internal/errors"
	"github.com/taekim-dev/resume-rag-engine/internal/segment"
	"github.com/taekim-dev/resume-rag-engine/internal/tokenizer"
	"github.com/taekim-dev/resume-rag-engine/model"
	"github.com/taekim-dev/resume-rag-engine/store"
)

// Service builds chunk stores and inverted indexes from raw document text.
type Service struct {
	cfg        *config.Config
	splitter   *segment.SectionSplitter
	grouper    *segment.EntityGrouper
	keywords   *chunking.KeywordExtractor
	summarizer *chunking.ContextSummarizer
}

// NewService creates an index builder. The configuration is validated here
// so violations fail loudly before any build runs.
func NewService(cfg *config.Config, vocab *config.Vocabulary) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil: %w", internalErrors.ErrInvalidInput)
	}
	if vocab == nil {
		return nil, fmt.Errorf("vocabulary cannot be nil: %w", internalErrors.ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	splitter := segment.NewSectionSplitter(vocab)
	extractor := chunking.NewKeywordExtractor(vocab, cfg.MaxKeywords)

	return &Service{
		cfg:        cfg,
		splitter:   splitter,
		grouper:    segment.NewEntityGrouper(cfg, splitter),
		keywords:   extractor,
		summarizer: chunking.NewContextSummarizer(extractor, cfg.Subject),
	}, nil
}

// BuildIndex runs the full build-time pipeline over one document and returns
// the ordered chunk set plus the inverted index over it. Empty or
// whitespace-only input yields an empty store and index, not an error.
// Deterministic: identical input produces byte-identical chunks and an
// identical index.
func (s *Service) BuildIndex(documentText, source string) (*store.ChunkStore, *index.InvertedIndex, error) {
	lines := segment.ToLines(documentText)
	sections := s.splitter.Split(lines)

	size := s.cfg.TargetChunkSize
	overlap := s.cfg.Overlap()

	chunks := make([]model.Chunk, 0)
	for _, sec := range sections {
		for _, block := range s.grouper.Group(sec) {
			summary := s.summarizer.Summarize(block.Section, block.Entity, block.Content)

			for _, span := range chunking.SlidingWindow(block.Content, size, overlap) {
				// The context marker makes each chunk self-contained and
				// lets section/entity names contribute keyword matches.
				text := fmt.Sprintf("Section: %s | Entity: %s - %s", block.Section, block.Entity, span)

				chunks = append(chunks, model.Chunk{
					ID:   fmt.Sprintf("chunk_%03d", len(chunks)),
					Text: text,
					Metadata: model.ChunkMetadata{
						Source:         source,
						Section:        block.Section,
						Entity:         block.Entity,
						Keywords:       s.keywords.Extract(text),
						SummaryContext: summary,
					},
				})
			}
		}
	}

	chunkStore, err := store.NewChunkStore(chunks)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to assemble chunk store: %w", err)
	}

	inv := buildInvertedIndex(chunks)
	log.Printf("Built index for %s: %d sections, %d chunks, %d terms", source, len(sections), len(chunks), inv.TermCount())

	return chunkStore, inv, nil
}

// buildInvertedIndex tokenizes each chunk's text and keyword metadata and
// records, per term, the chunks containing it with term-frequency counts.
// Chunks are visited in id order, so posting lists come out sorted.
func buildInvertedIndex(chunks []model.Chunk) *index.InvertedIndex {
	inv := index.NewInvertedIndex()
	for _, c := range chunks {
		for _, tok := range tokenizer.Tokenize(c.Text) {
			inv.Add(tok, c.ID)
		}
		for _, kw := range c.Metadata.Keywords {
			for _, tok := range tokenizer.Tokenize(kw) {
				inv.Add(tok, c.ID)
			}
		}
	}
	return inv
}
