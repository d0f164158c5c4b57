// Package synthesis turns ranked evidence into an answer. The prompt forces
// entity-level reasoning: evidence is grouped by company or project before
// the model sees it, hallucination is explicitly forbidden, and the output
// structure is specified. When no model is configured the service degrades
// to a deterministic evidence summary built from the same groups.
package synthesis

import (
	"fmt"
	"strings"

	"github.com/taekim-dev/resume-rag-engine/internal/segment"
	"github.com/taekim-dev/resume-rag-engine/services"
)

// EntityGroup is the evidence attributed to one company or project, in score
// order. Groups preserve first-seen order across the ranked evidence list.
type EntityGroup struct {
	Entity   string
	Evidence []services.Evidence
}

// GroupByEntity partitions evidence by entity. Grouping prevents the model
// from blending separate experiences together and keeps citations clean.
func GroupByEntity(evidence []services.Evidence) []EntityGroup {
	groups := make([]EntityGroup, 0)
	byEntity := make(map[string]int)

	for _, ev := range evidence {
		entity := strings.TrimSpace(ev.Entity)
		if entity == "" {
			entity = segment.GeneralEntity
		}
		idx, ok := byEntity[entity]
		if !ok {
			groups = append(groups, EntityGroup{Entity: entity})
			idx = len(groups) - 1
			byEntity[entity] = idx
		}
		groups[idx].Evidence = append(groups[idx].Evidence, ev)
	}
	return groups
}

// BuildPrompt renders the structured synthesis prompt for one query.
func BuildPrompt(subject, query string, groups []EntityGroup) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "You are answering a question about %s using ONLY the evidence provided.\n", subject)
	buf.WriteString("Rules:\n")
	buf.WriteString("- Do not invent or assume experience\n")
	buf.WriteString("- Group information by company or project\n")
	buf.WriteString("- Be concise and factual\n")
	buf.WriteString("- If evidence is insufficient, say so\n\n")
	fmt.Fprintf(&buf, "Question:\n%s\n\n", query)
	buf.WriteString("Evidence:\n")

	for _, g := range groups {
		fmt.Fprintf(&buf, "[Entity: %s]\n", g.Entity)
		for _, ev := range g.Evidence {
			fmt.Fprintf(&buf, "- (%s) %s\n", ev.ID, ev.TextPreview)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("Now write the answer grouped by entity. Use bullet points under each entity.")
	return buf.String()
}

// Citations derives one citation per evidence chunk, in rank order.
func Citations(evidence []services.Evidence) []services.Citation {
	citations := make([]services.Citation, 0, len(evidence))
	for _, ev := range evidence {
		citations = append(citations, services.Citation{
			ChunkID: ev.ID,
			Section: ev.Section,
			Entity:  ev.Entity,
		})
	}
	return citations
}
