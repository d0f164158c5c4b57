// Package report computes the structured build report that verifies
// chunking invariants after an index build. It is the guardrail against
// silent regressions when the résumé or the parsing rules change: bad
// entities, an overgrown UNKNOWN section, missing context markers, or low
// keyword coverage all become visible numbers.
package report

import (
	"sort"
	"strings"
	"unicode"

	"github.com/taekim-dev/resume-rag-engine/internal/segment"
	"github.com/taekim-dev/resume-rag-engine/services"
	"github.com/taekim-dev/resume-rag-engine/store"
)

// continuationMaxLen mirrors the entity-header length cutoff: a long
// comma-bearing entity name is almost certainly a wrapped bullet line that
// got promoted to a header.
const continuationMaxLen = 90

// Build computes the report for one chunk store. An empty store yields a
// zero-valued report.
func Build(chunks *store.ChunkStore) services.BuildReport {
	rep := services.BuildReport{
		Sections:           make([]services.SectionReport, 0),
		SuspiciousEntities: make([]services.SuspiciousEntity, 0),
	}
	if chunks == nil || chunks.Len() == 0 {
		return rep
	}

	sectionOrder := make([]string, 0)
	bySection := make(map[string]*services.SectionReport)
	lengths := make([]int, 0, chunks.Len())
	prefixed := 0
	withKeywords := 0
	seenSuspicious := make(map[services.SuspiciousEntity]struct{})

	for _, c := range chunks.Chunks {
		sec, ok := bySection[c.Metadata.Section]
		if !ok {
			sectionOrder = append(sectionOrder, c.Metadata.Section)
			sec = &services.SectionReport{
				Section:     c.Metadata.Section,
				EntityCount: make(map[string]int),
			}
			bySection[c.Metadata.Section] = sec
		}
		sec.ChunkCount++
		sec.EntityCount[c.Metadata.Entity]++

		if suspicious(c.Metadata.Entity) {
			key := services.SuspiciousEntity{Entity: c.Metadata.Entity, Section: c.Metadata.Section}
			if _, dup := seenSuspicious[key]; !dup {
				seenSuspicious[key] = struct{}{}
				rep.SuspiciousEntities = append(rep.SuspiciousEntities, key)
			}
		}

		lengths = append(lengths, len(c.Text))
		if strings.HasPrefix(c.Text, "Section:") && strings.Contains(c.Text, "Entity:") {
			prefixed++
		}
		if len(c.Metadata.Keywords) > 0 {
			withKeywords++
		}
	}

	for _, name := range sectionOrder {
		rep.Sections = append(rep.Sections, *bySection[name])
	}

	sort.Ints(lengths)
	rep.ChunkLengthMin = lengths[0]
	rep.ChunkLengthMedian = lengths[len(lengths)/2]
	rep.ChunkLengthMax = lengths[len(lengths)-1]

	total := float64(chunks.Len())
	rep.PrefixCoverage = float64(prefixed) / total * 100.0
	rep.KeywordCoverage = float64(withKeywords) / total * 100.0

	return rep
}

// suspicious flags entity names that look like misparses: date-bearing
// lines or sentence-like bullet continuations promoted to headers.
func suspicious(entity string) bool {
	if segment.HasDateSignal(entity) {
		return true
	}
	s := strings.TrimSpace(entity)
	if s == "" {
		return false
	}
	if unicode.IsLower(rune(s[0])) {
		return true
	}
	return len(s) > continuationMaxLen && strings.Contains(s, ",")
}
