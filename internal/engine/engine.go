// Package engine owns the index lifecycle: building snapshots, persisting
// them, restoring them at startup, and serving queries against the current
// one. A snapshot is immutable once built; Rebuild swaps a fresh snapshot in
// atomically, so in-flight queries keep reading the one they started with.
package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/index"
	internalErrors "github.com/taekim-dev/resume-rag-engine/internal/errors"
	"github.com/taekim-dev/resume-rag-engine/internal/indexing"
	"github.com/taekim-dev/resume-rag-engine/internal/persistence"
	"github.com/taekim-dev/resume-rag-engine/internal/report"
	"github.com/taekim-dev/resume-rag-engine/internal/search"
	"github.com/taekim-dev/resume-rag-engine/services"
	"github.com/taekim-dev/resume-rag-engine/store"
)

const (
	dataDirPerm       = 0750
	manifestFile      = "manifest.gob"
	invertedIndexFile = "inverted_index.gob"
	chunkStoreFile    = "chunk_store.gob"
)

// manifest records snapshot provenance alongside the gob data files.
type manifest struct {
	Source  string
	BuiltAt time.Time
}

// snapshot is one immutable build result plus the searcher bound to it.
type snapshot struct {
	chunks   *store.ChunkStore
	inv      *index.InvertedIndex
	source   string
	builtAt  time.Time
	searcher *search.Service
}

// Engine implements services.EvidenceStore. Queries go lock-free through an
// atomic snapshot pointer; rebuilds are serialized by a mutex.
type Engine struct {
	cfg     *config.Config
	vocab   *config.Vocabulary
	builder *indexing.Service
	dataDir string

	buildMu sync.Mutex
	current atomic.Pointer[snapshot]
}

var _ services.EvidenceStore = (*Engine)(nil)

// NewEngine creates an engine and restores the persisted snapshot from
// cfg.DataDir if one exists. A missing snapshot is a normal fresh start; a
// corrupt one is logged and skipped.
func NewEngine(cfg *config.Config, vocab *config.Vocabulary) (*Engine, error) {
	builder, err := indexing.NewService(cfg, vocab)
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		cfg:     cfg,
		vocab:   vocab,
		builder: builder,
		dataDir: cfg.DataDir,
	}
	if err := os.MkdirAll(eng.dataDir, dataDirPerm); err != nil {
		log.Printf("Warning: could not create data directory %s: %v. Proceeding without persistence.", eng.dataDir, err)
	}

	snap, err := eng.loadSnapshot()
	switch {
	case err == os.ErrNotExist:
		log.Printf("No snapshot found in %s, starting empty", eng.dataDir)
	case err != nil:
		log.Printf("Warning: %v. Starting empty.", err)
	default:
		eng.current.Store(snap)
		log.Printf("Restored snapshot from %s: %d chunks, %d terms (built %s)",
			eng.dataDir, snap.chunks.Len(), snap.inv.TermCount(), snap.builtAt.Format(time.RFC3339))
	}
	return eng, nil
}

// Rebuild runs the full build pipeline over documentText, persists the result,
// and swaps it in as the current snapshot. Empty input yields a valid empty
// snapshot. Queries running concurrently keep the snapshot they started with.
func (e *Engine) Rebuild(documentText, source string) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	chunks, inv, err := e.builder.BuildIndex(documentText, source)
	if err != nil {
		return err
	}

	searcher, err := search.NewService(inv, chunks, e.vocab.PhraseTerms)
	if err != nil {
		return err
	}

	snap := &snapshot{
		chunks:   chunks,
		inv:      inv,
		source:   source,
		builtAt:  time.Now().UTC(),
		searcher: searcher,
	}

	if err := e.saveSnapshot(snap); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	e.current.Store(snap)
	return nil
}

// Retrieve answers a query against the current snapshot.
func (e *Engine) Retrieve(query string, topK int) (services.RetrievalResult, error) {
	snap := e.current.Load()
	if snap == nil {
		return services.RetrievalResult{}, internalErrors.ErrIndexNotBuilt
	}
	return snap.searcher.Retrieve(query, topK)
}

// Stats describes the current snapshot.
func (e *Engine) Stats() (services.IndexStats, error) {
	snap := e.current.Load()
	if snap == nil {
		return services.IndexStats{}, internalErrors.ErrIndexNotBuilt
	}

	// sections in document order, first occurrence wins
	seen := make(map[string]struct{})
	sections := make([]string, 0)
	for _, c := range snap.chunks.Chunks {
		if _, ok := seen[c.Metadata.Section]; !ok {
			seen[c.Metadata.Section] = struct{}{}
			sections = append(sections, c.Metadata.Section)
		}
	}

	return services.IndexStats{
		Source:     snap.source,
		BuiltAt:    snap.builtAt,
		ChunkCount: snap.chunks.Len(),
		TermCount:  snap.inv.TermCount(),
		Sections:   sections,
	}, nil
}

// Report computes the build report for the current snapshot.
func (e *Engine) Report() (services.BuildReport, error) {
	snap := e.current.Load()
	if snap == nil {
		return services.BuildReport{}, internalErrors.ErrIndexNotBuilt
	}
	return report.Build(snap.chunks), nil
}

func (e *Engine) saveSnapshot(snap *snapshot) error {
	if err := persistence.SaveGob(filepath.Join(e.dataDir, chunkStoreFile), snap.chunks); err != nil {
		return err
	}
	if err := persistence.SaveGob(filepath.Join(e.dataDir, invertedIndexFile), snap.inv); err != nil {
		return err
	}
	m := manifest{Source: snap.source, BuiltAt: snap.builtAt}
	return persistence.SaveGob(filepath.Join(e.dataDir, manifestFile), m)
}

// loadSnapshot restores the persisted snapshot. Returns os.ErrNotExist when
// no manifest is present; any other failure wraps the offending path.
func (e *Engine) loadSnapshot() (*snapshot, error) {
	manifestPath := filepath.Join(e.dataDir, manifestFile)
	var m manifest
	if err := persistence.LoadGob(manifestPath, &m); err != nil {
		if err == os.ErrNotExist {
			return nil, os.ErrNotExist
		}
		return nil, internalErrors.NewSnapshotLoadError(manifestPath, err)
	}

	chunks := &store.ChunkStore{}
	chunksPath := filepath.Join(e.dataDir, chunkStoreFile)
	if err := persistence.LoadGob(chunksPath, chunks); err != nil {
		return nil, internalErrors.NewSnapshotLoadError(chunksPath, err)
	}

	inv := &index.InvertedIndex{}
	invPath := filepath.Join(e.dataDir, invertedIndexFile)
	if err := persistence.LoadGob(invPath, inv); err != nil {
		return nil, internalErrors.NewSnapshotLoadError(invPath, err)
	}

	searcher, err := search.NewService(inv, chunks, e.vocab.PhraseTerms)
	if err != nil {
		return nil, internalErrors.NewSnapshotLoadError(e.dataDir, err)
	}

	return &snapshot{
		chunks:   chunks,
		inv:      inv,
		source:   m.Source,
		builtAt:  m.BuiltAt,
		searcher: searcher,
	}, nil
}
