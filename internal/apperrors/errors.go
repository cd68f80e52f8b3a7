package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrIntegrity indicates that persisted data violates a core accounting
// invariant (e.g. a confirmed journal entry whose lines do not balance).
// Reports built on such data would be invalid, so callers must treat this
// as fatal rather than skip the offending entry.
var ErrIntegrity = errors.New("data integrity violation")

// ErrInvalidRange indicates a date range where from is after to.
var ErrInvalidRange = errors.New("invalid date range: from is after to")

// ErrUnknownBusinessType indicates an unsupported business type code for the
// simplified consumption tax method.
var ErrUnknownBusinessType = errors.New("unknown business type for simplified tax method")

// ErrUnsupportedMethod indicates an unsupported depreciation or tax calculation method.
var ErrUnsupportedMethod = errors.New("unsupported calculation method")

// ErrImmutableEntry indicates an attempt to modify or delete a confirmed journal entry.
var ErrImmutableEntry = errors.New("confirmed journal entries are immutable")

// LineError describes a validation failure on a single journal line.
type LineError struct {
	Index   int    `json:"index"` // zero-based position within the submitted lines
	Message string `json:"message"`
}

// ValidationError aggregates entry-level and per-line validation failures so
// the posting boundary can report every offending line in one response.
type ValidationError struct {
	Message    string      `json:"message"`
	LineErrors []LineError `json:"lineErrors,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.LineErrors) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.LineErrors))
	for _, le := range e.LineErrors {
		parts = append(parts, fmt.Sprintf("line %d: %s", le.Index, le.Message))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

// Unwrap makes every ValidationError match errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError from a message and optional line errors.
func NewValidationError(message string, lineErrors ...LineError) *ValidationError {
	return &ValidationError{Message: message, LineErrors: lineErrors}
}
