// Package index defines the inverted index mapping search terms to the
// chunks containing them. An index is populated once during a single-threaded
// build and is immutable afterward; concurrent readers need no locking.
package index

import (
	"bytes"
	"encoding/gob"
)

// InvertedIndex maps a normalized term to the ordered set of chunk ids
// containing it. Consistent with the chunk set at the moment of build; a new
// document version triggers a full rebuild, never an in-place patch.
type InvertedIndex struct {
	Terms map[string]PostingList
}

// NewInvertedIndex creates an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{Terms: make(map[string]PostingList)}
}

// Add records one occurrence of term in the chunk, incrementing the term
// frequency when the chunk is already posted. Chunks must be added in id
// order so posting lists stay sorted by construction. Build-time only.
func (ii *InvertedIndex) Add(term, chunkID string) {
	list := ii.Terms[term]
	if n := len(list); n > 0 && list[n-1].ChunkID == chunkID {
		list[n-1].TermFrequency++
		ii.Terms[term] = list
		return
	}
	ii.Terms[term] = append(list, PostingEntry{ChunkID: chunkID, TermFrequency: 1})
}

// Postings returns the posting list for a term, nil when absent.
func (ii *InvertedIndex) Postings(term string) PostingList {
	return ii.Terms[term]
}

// TermCount returns the number of distinct indexed terms.
func (ii *InvertedIndex) TermCount() int {
	return len(ii.Terms)
}

// gobInvertedIndexData mirrors InvertedIndex for gob encoding.
type gobInvertedIndexData struct {
	Terms map[string]PostingList
}

// GobEncode implements gob.GobEncoder.
func (ii *InvertedIndex) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobInvertedIndexData{Terms: ii.Terms}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (ii *InvertedIndex) GobDecode(data []byte) error {
	decoded := gobInvertedIndexData{}
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&decoded); err != nil {
		return err
	}
	ii.Terms = decoded.Terms
	if ii.Terms == nil {
		ii.Terms = make(map[string]PostingList)
	}
	return nil
}
