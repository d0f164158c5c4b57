// Package api exposes the résumé evidence engine over HTTP: a chat endpoint
// that answers questions with citations, plus reindex, stats, and report
// operations for the build lifecycle.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/taekim-dev/resume-rag-engine/internal/errors"
	"github.com/taekim-dev/resume-rag-engine/internal/extract"
	"github.com/taekim-dev/resume-rag-engine/internal/synthesis"
	"github.com/taekim-dev/resume-rag-engine/services"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// API holds dependencies for the HTTP handlers: the evidence engine and the
// answer synthesizer.
type API struct {
	store      services.EvidenceStore
	synthesize *synthesis.Service
	resumeFile string
}

// NewAPI creates the API handler structure. resumeFile is the document that
// POST /reindex re-reads.
func NewAPI(store services.EvidenceStore, synthesize *synthesis.Service, resumeFile string) *API {
	return &API{
		store:      store,
		synthesize: synthesize,
		resumeFile: resumeFile,
	}
}

// SetupRoutes defines all HTTP routes.
func SetupRoutes(router *gin.Engine, store services.EvidenceStore, synthesize *synthesis.Service, resumeFile string) {
	apiHandler := NewAPI(store, synthesize, resumeFile)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.POST("/chat", apiHandler.ChatHandler)
	router.POST("/reindex", apiHandler.ReindexHandler)
	router.GET("/stats", apiHandler.GetStatsHandler)
	router.GET("/report", apiHandler.GetReportHandler)
}

// HealthCheckHandler provides a simple health check endpoint.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "resume-rag-engine",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// ReindexHandler re-reads the configured résumé file, rebuilds the index,
// and swaps the new snapshot in. In-flight queries keep the old snapshot.
func (api *API) ReindexHandler(c *gin.Context) {
	text, err := extract.TextFromFile(api.resumeFile)
	if err != nil {
		SendExtractionError(c, api.resumeFile, err)
		return
	}

	if err := api.store.Rebuild(text, api.resumeFile); err != nil {
		SendIndexingError(c, err)
		return
	}

	stats, err := api.store.Stats()
	if err != nil {
		SendInternalError(c, "stats after rebuild", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Index rebuilt from '" + api.resumeFile + "'",
		"stats":   stats,
	})
}

// GetStatsHandler returns statistics for the current index snapshot.
func (api *API) GetStatsHandler(c *gin.Context) {
	stats, err := api.store.Stats()
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotBuilt) {
			SendIndexNotBuiltError(c)
			return
		}
		SendInternalError(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetReportHandler returns the build report for the current snapshot.
func (api *API) GetReportHandler(c *gin.Context) {
	report, err := api.store.Report()
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotBuilt) {
			SendIndexNotBuiltError(c)
			return
		}
		SendInternalError(c, "report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
