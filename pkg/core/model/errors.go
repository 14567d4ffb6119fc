package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an unknown rota, shift or staff id, or removal
	// of an assignment that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrImmutableRota indicates a mutation attempted on a published or
	// archived rota.
	ErrImmutableRota = errors.New("rota is not mutable")

	// ErrValidationFailed indicates a publish attempted while hard-constraint
	// violations remain.
	ErrValidationFailed = errors.New("rota validation failed")

	// ErrVersionConflict indicates an optimistic-concurrency write was
	// rejected because the rota changed since it was read.
	ErrVersionConflict = errors.New("rota version conflict")
)

// ConstraintViolationError reports a hard-constraint rule failure on an
// assignment attempt. The RuleID identifies which rule rejected it.
type ConstraintViolationError struct {
	RuleID  RuleID
	Message string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation [%s]: %s", e.RuleID, e.Message)
}

// IsConstraintViolation reports whether err is a ConstraintViolationError
// and returns it if so.
func IsConstraintViolation(err error) (*ConstraintViolationError, bool) {
	var cv *ConstraintViolationError
	if errors.As(err, &cv) {
		return cv, true
	}
	return nil, false
}
