// Package apierror defines the error taxonomy shared by all usecases and the
// HTTP normalizer that maps any failure to the uniform error envelope.
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindInternal
)

// Error is a classified domain error. Operational errors carry messages that
// are safe to show to callers; non-operational ones are masked outside
// development.
type Error struct {
	Kind        Kind
	Message     string
	Operational bool
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps the kind to an HTTP status code. Conflict serializes as 400
// for wire compatibility; the distinct kind is still available to callers.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Operational: true}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Operational: true}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Operational: true}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message, Operational: true}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message, Operational: true}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Operational: false}
}

// KindOf reports the kind of err, or KindInternal when err is not a
// classified domain error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a classified domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
