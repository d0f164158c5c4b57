// Package store holds the ordered chunk set produced by one index build.
// Like the inverted index, a ChunkStore is write-once: populated during the
// build, then read-only for any number of concurrent queriers.
package store

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/taekim-dev/resume-rag-engine/model"
)

// ChunkStore keeps chunks in build order and resolves chunk ids to chunks.
type ChunkStore struct {
	Chunks []model.Chunk

	byID map[string]int // rebuilt on load, never persisted
}

// NewChunkStore creates a store over the given chunks, which must already be
// in build order with unique ids.
func NewChunkStore(chunks []model.Chunk) (*ChunkStore, error) {
	byID := make(map[string]int, len(chunks))
	for i, c := range chunks {
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate chunk id '%s' at position %d", c.ID, i)
		}
		byID[c.ID] = i
	}
	return &ChunkStore{Chunks: chunks, byID: byID}, nil
}

// Get returns the chunk with the given id.
func (cs *ChunkStore) Get(id string) (model.Chunk, bool) {
	idx, ok := cs.byID[id]
	if !ok {
		return model.Chunk{}, false
	}
	return cs.Chunks[idx], true
}

// Len returns the number of chunks.
func (cs *ChunkStore) Len() int {
	return len(cs.Chunks)
}

// gobChunkStoreData mirrors ChunkStore for gob encoding, excluding the
// derived id lookup.
type gobChunkStoreData struct {
	Chunks []model.Chunk
}

// GobEncode implements gob.GobEncoder.
func (cs *ChunkStore) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobChunkStoreData{Chunks: cs.Chunks}); err != nil {
		return nil, fmt.Errorf("failed to gob encode chunk store: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder and rebuilds the id lookup.
func (cs *ChunkStore) GobDecode(data []byte) error {
	decoded := gobChunkStoreData{}
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to gob decode chunk store: %w", err)
	}
	cs.Chunks = decoded.Chunks
	cs.byID = make(map[string]int, len(cs.Chunks))
	for i, c := range cs.Chunks {
		cs.byID[c.ID] = i
	}
	return nil
}
