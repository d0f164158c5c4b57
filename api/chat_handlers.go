package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/taekim-dev/resume-rag-engine/internal/errors"
	"github.com/taekim-dev/resume-rag-engine/services"
)

// ChatRequest is the body of POST /chat. TopK may be omitted; zero means the
// retrieval default.
type ChatRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// ChatResponse carries the synthesized answer with its supporting evidence
// and citations.
type ChatResponse struct {
	Query     string              `json:"query"`
	TopK      int                 `json:"top_k"`
	Answer    string              `json:"answer"`
	Citations []services.Citation `json:"citations"`
	Evidence  []services.Evidence `json:"evidence"`
}

// ChatHandler answers a question about the résumé owner. Queries with no
// matching evidence are a normal outcome: the response says evidence was
// insufficient and carries empty citations.
func (api *API) ChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateChatRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	retrieval, err := api.store.Retrieve(req.Query, req.TopK)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotBuilt) {
			SendIndexNotBuiltError(c)
			return
		}
		SendRetrievalError(c, err)
		return
	}

	answer, citations, err := api.synthesize.Answer(c.Request.Context(), retrieval)
	if err != nil {
		SendInternalError(c, "answer synthesis", err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Query:     retrieval.Query,
		TopK:      retrieval.TopK,
		Answer:    answer,
		Citations: citations,
		Evidence:  retrieval.Evidence,
	})
}
