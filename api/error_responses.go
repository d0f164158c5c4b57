package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"

	// Server Error Codes (5xx)
	ErrorCodeIndexNotBuilt    ErrorCode = "INDEX_NOT_BUILT"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrorCodeIndexingFailed   ErrorCode = "INDEXING_FAILED"
	ErrorCodeRetrievalFailed  ErrorCode = "RETRIEVAL_FAILED"
	ErrorCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	})
}

// SendStructuredValidationError sends a validation error with per-field details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}
	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendIndexNotBuiltError reports that no index snapshot exists yet; the
// caller should POST /reindex first.
func SendIndexNotBuiltError(c *gin.Context) {
	SendError(c, http.StatusServiceUnavailable, ErrorCodeIndexNotBuilt,
		"Index not built yet; trigger a reindex first")
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendIndexingError sends a standardized index-build error
func SendIndexingError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeIndexingFailed,
		"Index rebuild failed: "+err.Error())
}

// SendRetrievalError sends a standardized retrieval error
func SendRetrievalError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeRetrievalFailed,
		"Retrieval failed: "+err.Error())
}

// SendExtractionError reports a failure to read the résumé source file
func SendExtractionError(c *gin.Context, path string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeExtractionFailed,
		"Failed to extract text from '"+path+"': "+err.Error())
}
