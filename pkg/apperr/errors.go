// Package apperr defines the error taxonomy shared by the HTTP, CLI and MCP
// surfaces. Every error that should reach a client carries a status code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// CodedError is a sentinel with an HTTP status attached.
type CodedError struct {
	msg  string
	code int
}

func New(code int, msg string) *CodedError { return &CodedError{msg: msg, code: code} }

func (e *CodedError) Error() string { return e.msg }
func (e *CodedError) Code() int     { return e.code }

var (
	ErrInvalidInput = New(http.StatusBadRequest, "invalid input")
	ErrUnauthorized = New(http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = New(http.StatusForbidden, "forbidden")
	ErrNotFound     = New(http.StatusNotFound, "not found")
	ErrConflict     = New(http.StatusConflict, "conflict")
	ErrStorage      = New(http.StatusInternalServerError, "storage unavailable")
	ErrUpstream     = New(http.StatusBadGateway, "upstream unavailable")
)

type detailed struct {
	base *CodedError
	msg  string
}

func (d *detailed) Error() string { return d.msg }
func (d *detailed) Unwrap() error { return d.base }

// Wrap gives a sentinel a client-facing message. errors.Is(err, base) holds.
func Wrap(base *CodedError, msg string) error { return &detailed{base: base, msg: msg} }

// Wrapf is Wrap with formatting.
func Wrapf(base *CodedError, format string, args ...any) error {
	return &detailed{base: base, msg: fmt.Sprintf(format, args...)}
}

// Storage marks err as a storage failure while keeping the cause in the chain.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// Resolve maps an error chain to a status code and a message safe to return
// to a client. Server-side failures never leak their cause.
func Resolve(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	var d *detailed
	if errors.As(err, &d) {
		if d.base.code >= http.StatusInternalServerError {
			return d.base.code, d.base.msg
		}
		return d.base.code, d.msg
	}

	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.code, ce.msg
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
