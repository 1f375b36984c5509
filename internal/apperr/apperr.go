// Package apperr defines the error taxonomy shared by services and handlers.
// Services return typed errors; the API layer translates them to HTTP
// statuses in exactly one place.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP translation.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

// Error is a typed application error with a client-safe message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Validation reports missing or malformed input (400).
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

// Conflict reports a uniqueness violation (409).
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

// Auth reports bad credentials or a missing/invalid token (401).
func Auth(msg string) *Error { return &Error{Kind: KindAuth, Msg: msg} }

// NotFound reports an unknown resource (404).
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// Status maps an error to an HTTP status code. Untyped errors map to 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. Untyped errors get a
// generic message so internals never leak to the client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Something went wrong, please try again later"
}
