// Package domainerrors provides coded errors for the prediction domain.
//
// Services and parsers return these so transports (CLI, HTTP) can translate
// them into exit codes or HTTP statuses without string matching. Infrastructure
// facts (lookup unavailable, etc.) are wrapped with the appropriate code at the
// boundary where they are observed.
package domainerrors

import "errors"

// Code classifies a domain error.
type Code string

const (
	// CodeInvalidInput marks malformed caller input: bad plate, date, or
	// time formats, and well-formed but non-existent calendar dates.
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest marks a structurally invalid request.
	CodeBadRequest Code = "bad_request"
	// CodeUnauthorized marks a missing or rejected credential.
	CodeUnauthorized Code = "unauthorized"
	// CodeNotFound marks a missing entity.
	CodeNotFound Code = "not_found"
	// CodeUnavailable marks an external collaborator failure, e.g. the
	// holiday lookup service being unreachable.
	CodeUnavailable Code = "unavailable"
	// CodeInternal marks an unexpected internal failure.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Message is safe to show to callers; Err holds
// the wrapped cause, if any.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and caller-facing message to an underlying error.
// A nil err yields nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal for
// uncoded errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
