package repository

import (
	"errors"
	"strings"
)

// ErrDuplicateEncoding is returned when a column maps two values to the same code, or one value twice
var ErrDuplicateEncoding = errors.New("duplicate category encoding")

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConstraintError   ErrorType = "constraint"
)

// Classify returns the type of a write error, or "" when it is not a constraint failure
func Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case IsDuplicateKeyError(err):
		return DuplicateKeyError
	case IsConstraintError(err):
		return ConstraintError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a unique index violation.
// Postgres and sqlite word it differently.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsConstraintError checks if the error is related to constraint violations
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "not null") ||
		IsDuplicateKeyError(err)
}
