// Package domain holds the error taxonomy shared by the walking aggregates,
// the repository and the HTTP layer.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidIdentifier     = errors.New("invalid identifier")
	ErrInvalidOwnerReference = errors.New("invalid owner reference")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrQueryFailed           = errors.New("query failed")
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrCanceled              = errors.New("canceled")
)

// Error is a classified failure. Value carries the offending input when
// there is one (for example the raw identifier string).
type Error struct {
	Kind    error
	Message string
	Value   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidIdentifierError reports a malformed external identifier.
func NewInvalidIdentifierError(raw string, cause error) *Error {
	return &Error{
		Kind:    ErrInvalidIdentifier,
		Message: fmt.Sprintf("invalid identifier %q", raw),
		Value:   raw,
		Err:     cause,
	}
}

// NewInvalidOwnerReferenceError reports a record whose owner reference could not be parsed.
func NewInvalidOwnerReferenceError(raw string, cause error) *Error {
	return &Error{
		Kind:    ErrInvalidOwnerReference,
		Message: fmt.Sprintf("invalid owner reference %q", raw),
		Value:   raw,
		Err:     cause,
	}
}

// NewDuplicateKeyError reports an identifier collision on insert.
func NewDuplicateKeyError(entity string, cause error) *Error {
	return &Error{
		Kind:    ErrDuplicateKey,
		Message: fmt.Sprintf("%s already exists", entity),
		Err:     cause,
	}
}

// NewStorageUnavailableError reports that the storage backend could not be reached.
func NewStorageUnavailableError(op string, cause error) *Error {
	return &Error{
		Kind:    ErrStorageUnavailable,
		Message: fmt.Sprintf("storage unavailable during %s", op),
		Err:     cause,
	}
}

// NewQueryFailedError reports a storage call that reached the backend but failed.
func NewQueryFailedError(op string, cause error) *Error {
	return &Error{
		Kind:    ErrQueryFailed,
		Message: fmt.Sprintf("failed to %s", op),
		Err:     cause,
	}
}

// NewCanceledError reports a storage call abandoned because the caller went away.
func NewCanceledError(op string, cause error) *Error {
	return &Error{
		Kind:    ErrCanceled,
		Message: fmt.Sprintf("%s canceled", op),
		Err:     cause,
	}
}

// NewValidationError reports invalid request data.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(entity, id string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", entity, id),
		Value:   id,
	}
}
