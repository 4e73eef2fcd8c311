package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Every AppError unwraps to exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrPermission = errors.New("permission denied")
	ErrTransient  = errors.New("transient failure")
)

// AppError is a business rejection with a stable code and a human-readable message.
type AppError struct {
	Kind    error
	Code    string
	Message string
	Err     error
}

// NewAppError builds a sentinel AppError of the given kind.
func NewAppError(kind error, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Is matches any AppError with the same code, so reworded copies of a
// sentinel still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of e carrying a different message.
func (e *AppError) WithMessage(format string, args ...any) *AppError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// Transient wraps an infrastructure failure in the transient kind.
func Transient(op string, err error) error {
	return &AppError{Kind: ErrTransient, Code: "transient", Message: op, Err: err}
}

// KindOf returns the kind of err, or nil when err is not classified.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrPermission, ErrTransient} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
