package model

// Section is a named top-level grouping of résumé lines in document order.
type Section struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// EntityBlock is a contiguous group of lines within one section that belong
// to a single employer, project, or school. Blocks partition a section's
// lines with no gaps or overlaps, preserving document order.
type EntityBlock struct {
	Section string `json:"section"`
	Entity  string `json:"entity"`
	Content string `json:"content"`
}
