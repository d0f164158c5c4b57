// Package errors defines the error taxonomy for the résumé evidence engine.
// Empty documents, missing section/entity structure, and no-match queries are
// deliberately NOT errors; they propagate as valid-but-empty results. The one
// class that fails loudly is configuration violations.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrIndexNotBuilt is returned when a query arrives before any index
	// snapshot exists.
	ErrIndexNotBuilt = errors.New("index not built")

	// ErrInvalidConfig is returned when pipeline configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput is returned when a service is constructed with missing
	// or malformed inputs.
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidConfigError carries the offending option and the reason it was
// rejected. Configuration violations (e.g. overlap >= chunk size) would
// otherwise cause infinite or degenerate chunking loops.
type InvalidConfigError struct {
	Option string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration option '%s': %s", e.Option, e.Reason)
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewInvalidConfigError creates a new InvalidConfigError
func NewInvalidConfigError(option, reason string) *InvalidConfigError {
	return &InvalidConfigError{Option: option, Reason: reason}
}

// SnapshotLoadError wraps a failure to restore a persisted index snapshot.
type SnapshotLoadError struct {
	Path string
	Err  error
}

func (e *SnapshotLoadError) Error() string {
	return fmt.Sprintf("failed to load index snapshot from '%s': %v", e.Path, e.Err)
}

func (e *SnapshotLoadError) Unwrap() error {
	return e.Err
}

// NewSnapshotLoadError creates a new SnapshotLoadError
func NewSnapshotLoadError(path string, err error) *SnapshotLoadError {
	return &SnapshotLoadError{Path: path, Err: err}
}
