// Package apierror provides the error taxonomy and the JSON envelope used by
// every non-entity HTTP response.
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical envelope for status messages.
// Error carries the underlying detail and is only filled for 5xx responses.
type APIError struct {
	Success *bool  `json:"success,omitempty"`
	Msg     string `json:"msg"`
	Error   string `json:"error,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Msg: msg}
}

// WithDetail builds a 5xx envelope exposing the underlying error text.
func WithDetail(msg string, err error) *APIError {
	e := &APIError{Msg: msg}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// Failed marks the envelope with "success": false.
func Failed(msg string) *APIError {
	f := false
	return &APIError{Success: &f, Msg: msg}
}

// Kind classifies an error into an HTTP status family.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is returned by the service layer. Msg is safe to show to clients; Err
// is the wrapped cause, surfaced as detail only for KindInternal.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Envelope converts the error into its wire representation.
func (e *Error) Envelope() *APIError {
	if e.Kind == KindInternal {
		return WithDetail(e.Msg, e.Err)
	}
	return New(e.Msg)
}

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Msg: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
