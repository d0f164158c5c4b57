package synthesis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/taekim-dev/resume-rag-engine/services"
)

// insufficientEvidenceAnswer is returned when retrieval produced nothing to
// ground an answer on.
const insufficientEvidenceAnswer = "I don't have enough evidence in the résumé to answer that. Try asking about specific experience, projects, or skills."

// Service produces answers from retrieval results. With an enabled client it
// synthesizes through the model; without one, or when the model call fails,
// it falls back to a deterministic evidence summary so the chat endpoint
// never goes dark because of the LLM.
type Service struct {
	client  *Client
	subject string
}

// NewService creates an answer synthesizer. client may be disabled.
func NewService(client *Client, subject string) *Service {
	return &Service{client: client, subject: subject}
}

// Answer builds an answer and citations for one retrieval result. Empty
// evidence is not an error; it yields the insufficient-evidence answer with
// no citations.
func (s *Service) Answer(ctx context.Context, result services.RetrievalResult) (string, []services.Citation, error) {
	if len(result.Evidence) == 0 {
		return insufficientEvidenceAnswer, []services.Citation{}, nil
	}

	groups := GroupByEntity(result.Evidence)
	citations := Citations(result.Evidence)

	if !s.client.Enabled() {
		return s.fallbackAnswer(groups), citations, nil
	}

	answer, err := s.client.Complete(ctx, BuildPrompt(s.subject, result.Query, groups))
	if err != nil {
		log.Printf("Warning: answer synthesis failed, using evidence summary: %v", err)
		return s.fallbackAnswer(groups), citations, nil
	}
	return strings.TrimSpace(answer), citations, nil
}

// fallbackAnswer renders the evidence itself, grouped by entity, as the
// answer. Deterministic and model-free.
func (s *Service) fallbackAnswer(groups []EntityGroup) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Here is what %s's résumé shows:\n", s.subject)
	for _, g := range groups {
		fmt.Fprintf(&buf, "\n%s:\n", g.Entity)
		for _, ev := range g.Evidence {
			fmt.Fprintf(&buf, "- %s\n", ev.TextPreview)
		}
	}
	return strings.TrimSpace(buf.String())
}
