package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors.
var (
	ErrNotAttached     = errors.New("store not attached")
	ErrAlreadyAttached = errors.New("store already attached")
)

// ErrRawSetMissing reports that a raw record set is absent or empty when the
// pipeline requires it. Producing the raw sets is the ingestion collaborator's
// concern; the pipeline only surfaces the condition.
var ErrRawSetMissing = errors.New("raw record set absent or empty")

// Config validation errors.
var (
	ErrDataDirEmpty      = errors.New("data directory must not be empty")
	ErrDelimiterInvalid  = errors.New("field delimiter must be a single character")
	ErrSourceDirEmpty    = errors.New("source directory must not be empty")
	ErrSourceFileUnknown = errors.New("unknown source file key")
)

// EntityError wraps an error with the entity (table) it occurred on, so a
// failed run can report which entity failed and why.
type EntityError struct {
	Entity string
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s: %v", e.Entity, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}
