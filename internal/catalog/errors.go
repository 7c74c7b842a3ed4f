package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a taxon ID is not in the catalog.
var ErrNotFound = errors.New("taxon not found")

// ValidationError reports a rejected add-taxon submission.
// Field names the offending input ("name", "order", "tolerance").
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DuplicateIDError indicates the ID generator produced an ID already in use.
// The catalog is left unchanged when this is returned.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate taxon ID: %q", e.ID)
}
