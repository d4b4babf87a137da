// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package result

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation, callers only see it through the HTTP status
// and the message carried by the envelope.
type Kind int

const (
	KindInternalError Kind = iota
	KindValidationError
	KindAccessDenied
	KindNotFound
	KindConflict
	KindInvalidOperation
)

func (k Kind) String() string {
	switch k {
	case KindValidationError:
		return "ValidationError"
	case KindAccessDenied:
		return "AccessDenied"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindInvalidOperation:
		return "InvalidOperation"
	default:
		return "InternalError"
	}
}

const internalErrorMessage = "An internal error occurred while processing the request."

// Error is the failure returned by every engine operation.
// Message is safe to show to the requester, Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidationError, Message: message}
}

func NewAccessDenied(message string) *Error {
	return &Error{Kind: KindAccessDenied, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewInvalidOperation(message string) *Error {
	return &Error{Kind: KindInvalidOperation, Message: message}
}

func NewInternalError(message string, err error) *Error {
	if message == "" {
		message = internalErrorMessage
	}

	return &Error{Kind: KindInternalError, Message: message, Err: err}
}

// KindOf returns the kind carried by err, errors that are not *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternalError
}

// MessageOf returns the requester facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}

	return internalErrorMessage
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
