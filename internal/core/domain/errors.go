package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// Availability Errors
// ============================================================================

var (
	ErrScoringUnavailable  = errors.New("scoring artifact is not available")
	ErrSnapshotUnavailable = errors.New("dataset snapshot is not available")
)

// ============================================================================
// Analytics Errors
// ============================================================================

var (
	ErrUnknownGroupBy = errors.New("unknown group-by feature")
	ErrUnknownFeature = errors.New("unknown or non-numeric feature")
)

// ============================================================================
// Validation Errors
// ============================================================================

// FieldViolation names one feature and the rule it broke.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one submission, in schema
// order, so the caller can surface all of them inline at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}
