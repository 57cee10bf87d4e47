package apperr

import (
	"errors"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
)

// ValidationError marks an error caused by client input.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Kind returns the expression error kind carried by the chain, if any.
func (e *ValidationError) Kind() string {
	var exprErr *logic.Error
	if errors.As(e.Err, &exprErr) {
		return exprErr.Kind.String()
	}
	return ""
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
