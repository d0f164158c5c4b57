package model

// ChunkMetadata carries the retrieval metadata attached to every chunk.
// All chunks cut from the same entity block share the same Section, Entity,
// and SummaryContext values.
type ChunkMetadata struct {
	Source         string   `json:"source"`          // originating document label, e.g. the filename
	Section        string   `json:"section"`         // canonical section header, "UNKNOWN" if none matched
	Entity         string   `json:"entity"`          // employer/project/school name, "General" if none detected
	Keywords       []string `json:"keywords"`        // canonical keywords, deduplicated, first-seen order
	SummaryContext string   `json:"summary_context"` // one-line semantic summary of the owning entity block
}

// Chunk is the atomic retrievable unit of résumé text.
// The Text field is prefixed with a "Section: <s> | Entity: <e> - " context
// marker so each chunk is self-contained when shown as evidence.
type Chunk struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Metadata ChunkMetadata `json:"metadata"`
}
