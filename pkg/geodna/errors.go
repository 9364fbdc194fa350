package geodna

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification. Every error returned by this
// package wraps one of them.
var (
	// ErrInvalidInput reports a malformed code or argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateGeometry reports a calculation that would divide by, or
	// step by, zero.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// OpError wraps a sentinel error with the operation and code that failed.
type OpError struct {
	Op     string
	Code   string // Optional: the offending code
	Err    error
	Detail string
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("geodna: %s: %v", e.Op, e.Err)
	if e.Code != "" {
		base += fmt.Sprintf(" (code=%q)", e.Code)
	}
	if e.Detail != "" {
		base += ": " + e.Detail
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalidInput(op, code, format string, args ...any) error {
	return &OpError{Op: op, Code: code, Err: ErrInvalidInput, Detail: fmt.Sprintf(format, args...)}
}

func degenerate(op, code, format string, args ...any) error {
	return &OpError{Op: op, Code: code, Err: ErrDegenerateGeometry, Detail: fmt.Sprintf(format, args...)}
}
