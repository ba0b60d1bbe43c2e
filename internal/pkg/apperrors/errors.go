package apperrors

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all write paths. Repositories translate driver
// errors into these sentinels; entity-specific errors below wrap them so
// callers can match either the category or the exact condition.
var (
	// ErrDuplicateKey signals a primary-key or unique-constraint collision.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKeyViolation signals a missing referenced parent row.
	ErrForeignKeyViolation = errors.New("referenced record not found")
	// ErrValidation signals input rejected before any write happened.
	ErrValidation = errors.New("validation failed")
	// ErrPolicyViolation signals input that is well-formed but violates a
	// business rule (e.g. archived instructor assigned to a future term).
	ErrPolicyViolation = errors.New("policy violation")
	// ErrNotFound signals that the operation target does not exist.
	ErrNotFound = errors.New("not found")
)

// Catalog errors
var (
	ErrDegreeAlreadyExists     = NewCustomError(ErrDuplicateKey, "degree with this name and level already exists")
	ErrCourseAlreadyExists     = NewCustomError(ErrDuplicateKey, "course with this code or name already exists")
	ErrInstructorAlreadyExists = NewCustomError(ErrDuplicateKey, "instructor with this ID or email already exists")
	ErrDegreeNotFound          = NewCustomError(ErrNotFound, "degree not found")
	ErrCourseNotFound          = NewCustomError(ErrNotFound, "course not found")
	ErrInstructorNotFound      = NewCustomError(ErrNotFound, "instructor not found")
)

// Curriculum errors
var (
	ErrObjectiveAlreadyExists = NewCustomError(ErrDuplicateKey, "objective with this code or title already exists")
	ErrObjectiveNotFound      = NewCustomError(ErrNotFound, "objective not found")
	ErrLinkAlreadyExists      = NewCustomError(ErrDuplicateKey, "link already exists")
	ErrMappingAlreadyExists   = NewCustomError(ErrDuplicateKey, "course-objective mapping already exists")
	ErrCourseNotLinked        = NewCustomError(ErrForeignKeyViolation, "course is not linked to this degree")
	ErrObjectiveNotLinked     = NewCustomError(ErrForeignKeyViolation, "objective is not linked to this degree")
	ErrMappingNotFound        = NewCustomError(ErrForeignKeyViolation, "course-objective mapping not found for this degree")
)

// Offering errors
var (
	ErrSectionAlreadyExists = NewCustomError(ErrDuplicateKey, "section already exists for this course and term")
	ErrSectionNotFound      = NewCustomError(ErrNotFound, "section not found")
	ErrInstructorArchived   = NewCustomError(ErrPolicyViolation, "archived instructor cannot teach future terms")
)

// ValidationError reports a grade-distribution total that is neither zero
// nor the section enrollment, identifying the offending objective.
type ValidationError struct {
	Objective string
	Total     int
	Expected  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("objective %s: total graded (%d) must be 0 or exactly %d", e.Objective, e.Total, e.Expected)
}

// Unwrap lets callers match with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a grade-total validation error.
func NewValidationError(objective string, total, expected int) *ValidationError {
	return &ValidationError{Objective: objective, Total: total, Expected: expected}
}

// CustomError carries a human-readable message on top of a taxonomy
// sentinel.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewValidationFailure wraps ErrValidation with a specific message for
// malformed input (bad section number, non-positive enrollment, unknown
// semester and the like).
func NewValidationFailure(message string) *CustomError {
	return &CustomError{Err: ErrValidation, Message: message}
}

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
