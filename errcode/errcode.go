package errcode

import "errors"

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Fatal at attach.
	ResourceMissing Code = "resource_missing"
	TransportError  Code = "transport_error"

	// Contained per event; the device stays operational.
	ServicingError Code = "servicing_error"
	BufferTooSmall Code = "buffer_too_small"

	// Diagnostic only, never returned as a failure.
	ReportDropped Code = "report_dropped"

	NotAttached Code = "not_attached"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
// It unwraps through error chains built with %w or E.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	var e *E
	if errors.As(err, &e) {
		return e.C
	}
	return Error
}
