package api

import (
	"strings"
	"unicode/utf8"
)

// maxQueryLen caps chat queries; anything longer is almost certainly a paste
// accident, not a question.
const (
	maxQueryLen = 2000
	maxTopK     = 12
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateChatRequest validates a chat request. TopK zero is allowed and
// means the retrieval default.
func ValidateChatRequest(req *ChatRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(req.Query) == "" {
		result.AddError("query", "Query is required and cannot be empty")
	}
	if utf8.RuneCountInString(req.Query) > maxQueryLen {
		result.AddError("query", "Query cannot exceed 2000 characters")
	}

	if req.TopK < 0 {
		result.AddError("top_k", "top_k cannot be negative")
	}
	if req.TopK > maxTopK {
		result.AddError("top_k", "top_k cannot exceed 12")
	}

	return result
}
