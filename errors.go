package eep

import "errors"

// Error represents a structured eep error with context.
type Error struct {
	Op    string  // Operation that failed (e.g. "Serialize")
	Code  ErrCode // High-level error category
	Msg   string  // Human-readable message
	Inner error   // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		return "eep: " + e.Op + ": " + msg
	}
	return "eep: " + msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is provides errors.Is support, comparing by error code.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == te.Code
}

// ErrCode names the library's high-level error categories. eep has very
// few fallible runtime paths (see SPEC_FULL.md §7); most failure modes
// are programmer errors and panic instead of returning an *Error.
type ErrCode string

const (
	// ErrCodeSignpostUnavailable indicates the host has no real signpost
	// facility wired in.
	ErrCodeSignpostUnavailable ErrCode = "signpost host unavailable"
	// ErrCodeSerialize indicates the underlying structured-value encoder
	// failed (e.g. an io.Writer backing the encoder returned an error).
	ErrCodeSerialize ErrCode = "serialize"
)

// NewError creates a new structured error.
func NewError(op string, code ErrCode, msg string) *Error {
	return &Error{Op: op, Code: code, Msg: msg}
}

// WrapError wraps an existing error with eep context.
func WrapError(op string, code ErrCode, inner error) *Error {
	if inner == nil {
		return nil
	}
	return &Error{Op: op, Code: code, Msg: inner.Error(), Inner: inner}
}

// IsCode checks whether err is an *Error with the given code.
func IsCode(err error, code ErrCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// ErrSignpostUnavailable describes the absence of a real signpost facility
// on the current platform. No function in this package returns it:
// SignpostAvailable reports availability as a bool, and Signpost's sink
// methods never fail.
var ErrSignpostUnavailable = NewError("Signpost", ErrCodeSignpostUnavailable, "no signpost host available on this platform")
