package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies application errors so the HTTP layer can map them to
// status codes.
type Kind string

const (
	// KindNotFound means the addressed record does not exist or is hidden.
	KindNotFound Kind = "NOT_FOUND"

	// KindValidation means the client payload failed field checks.
	KindValidation Kind = "VALIDATION"

	// KindInternal covers storage and other infrastructure failures.
	KindInternal Kind = "INTERNAL"
)

// AppError is an error with a kind and, for validation failures, the
// per-field messages.
type AppError struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFound creates a not found error.
func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewValidation creates a validation error carrying field messages.
func NewValidation(fields map[string][]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "invalid input", Fields: fields}
}

// NewFieldError is a validation error on a single field.
func NewFieldError(field, message string) *AppError {
	return NewValidation(map[string][]string{field: {message}})
}

// NewInternal wraps an infrastructure failure.
func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal for anything else.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
