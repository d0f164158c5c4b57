// Package services defines the public interfaces and data transfer types of
// the résumé evidence engine, decoupling the API layer from the engine
// implementation.
package services

import "time"

// Evidence is one ranked chunk returned by a query, before any selection
// into citations.
type Evidence struct {
	ID          string   `json:"id"`
	Score       float64  `json:"score"`
	Section     string   `json:"section"`
	Entity      string   `json:"entity"`
	Keywords    []string `json:"keywords"`
	TextPreview string   `json:"text_preview"`
}

// Citation references an evidence chunk consumed by the answer-synthesis
// collaborator.
type Citation struct {
	ChunkID string `json:"chunk_id"`
	Section string `json:"section"`
	Entity  string `json:"entity"`
}

// RetrievalResult is the ranked evidence for one query. Evidence is sorted
// by score descending, ties broken by chunk id ascending.
type RetrievalResult struct {
	QueryID  string     `json:"query_id"` // unique UUID for this query
	Query    string     `json:"query"`
	TopK     int        `json:"top_k"`
	Evidence []Evidence `json:"evidence"`
	Took     int64      `json:"took"` // milliseconds
}

// IndexStats summarizes the current index snapshot.
type IndexStats struct {
	Source     string    `json:"source"`
	BuiltAt    time.Time `json:"built_at"`
	ChunkCount int       `json:"chunk_count"`
	TermCount  int       `json:"term_count"`
	Sections   []string  `json:"sections"` // document order
}

// SectionReport summarizes one section of the build report.
type SectionReport struct {
	Section     string         `json:"section"`
	ChunkCount  int            `json:"chunk_count"`
	EntityCount map[string]int `json:"entity_count"`
}

// SuspiciousEntity flags an entity name that looks like a misparse: a
// date-bearing line or a wrapped bullet continuation promoted to a header.
type SuspiciousEntity struct {
	Entity  string `json:"entity"`
	Section string `json:"section"`
}

// BuildReport is the structured report verifying chunking invariants after a
// build. It is the guardrail against regressions when the résumé or the
// parsing rules change.
type BuildReport struct {
	Sections           []SectionReport    `json:"sections"`
	SuspiciousEntities []SuspiciousEntity `json:"suspicious_entities"`
	ChunkLengthMin     int                `json:"chunk_length_min"`
	ChunkLengthMedian  int                `json:"chunk_length_median"`
	ChunkLengthMax     int                `json:"chunk_length_max"`
	PrefixCoverage     float64            `json:"prefix_coverage"`   // percent of chunks carrying the context marker
	KeywordCoverage    float64            `json:"keyword_coverage"`  // percent of chunks with at least one keyword
}

// Retriever answers queries against the current index snapshot. Any number
// of Retrieve calls may run concurrently; they observe one consistent
// snapshot each.
type Retriever interface {
	Retrieve(query string, topK int) (RetrievalResult, error)
}

// EvidenceStore is the full engine surface consumed by the API layer.
type EvidenceStore interface {
	Retriever

	// Rebuild constructs a new immutable snapshot from the document text and
	// atomically swaps it in. Empty input yields a valid empty snapshot.
	Rebuild(documentText, source string) error

	// Stats describes the current snapshot.
	Stats() (IndexStats, error)

	// Report computes the build report for the current snapshot.
	Report() (BuildReport, error)
}
