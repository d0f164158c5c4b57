package index

// PostingEntry records that a term appears in a chunk, with the term
// frequency used by retrieval scoring. Keyword metadata tokens count toward
// the frequency alongside free-text occurrences.
type PostingEntry struct {
	ChunkID       string
	TermFrequency int
}

// PostingList is the ordered set of chunks containing a term, sorted by
// chunk id ascending. Build order is chunk order, so the list is ordered by
// construction and never re-sorted.
type PostingList []PostingEntry
