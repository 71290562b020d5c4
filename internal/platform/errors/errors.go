// Package errors provides the coded error type used across services.
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-facing class of an error. Values are part of the wire
// format; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic
	// ErrorCodeUnavailable is for transient failures where a retry may succeed
	ErrorCodeUnavailable
	// ErrorCodeTooManyRequests is for upstream rate limiting
	ErrorCodeTooManyRequests
	// ErrorCodeConflict is for edits that contradict the current result set
	ErrorCodeConflict
	// ErrorCodeInvalidArgument is for well-formed input with bad values
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is for request DTOs failing validation
	ErrorCodeValidation
	// ErrorCodeJSON is for malformed JSON bodies
	ErrorCodeJSON
	// ErrorCodeNotFound is for unknown category codes and routes
	ErrorCodeNotFound
	// ErrorCodeTooLarge is for bodies above the configured cap
	ErrorCodeTooLarge
	// ErrorCodeMethodNotAllowed is for a known route hit with the wrong method
	ErrorCodeMethodNotAllowed
)

var codeNames = [...]string{
	ErrorCodeUnknown:          "unknown",
	ErrorCodePanic:            "panic",
	ErrorCodeUnavailable:      "unavailable",
	ErrorCodeTooManyRequests:  "too_many_requests",
	ErrorCodeConflict:         "conflict",
	ErrorCodeInvalidArgument:  "invalid_argument",
	ErrorCodeValidation:       "validation",
	ErrorCodeJSON:             "json",
	ErrorCodeNotFound:         "not_found",
	ErrorCodeTooLarge:         "too_large",
	ErrorCodeMethodNotAllowed: "method_not_allowed",
}

func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode maps an ErrorCode to an HTTP status
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels. Match with errors.Is; wrapped copies compare by code and message
var (
	ErrNotFound = New(ErrorCodeNotFound, "not found")
	// ErrAnalysisFailed marks any failure of the model-backed analysis path
	ErrAnalysisFailed = New(ErrorCodeUnavailable, "analysis request failed")
)

// Error carries a message, a code, an optional field and op tag, and a cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON error body
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.orig }

// Is matches another *Error with the same code and message, so sentinels survive Wrap
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.code == t.code && e.msg == t.msg
}

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending field
func (e *Error) Field() string { return e.field }

// Op returns the operation tag
func (e *Error) Op() string { return e.op }

// ToWire converts e to its JSON body
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error to a body; foreign errors become Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the innermost cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// As finds the outermost *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of err, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to an HTTP status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// HTTP returns status and body together
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// WithField returns a copy of err with field set; foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp returns a copy of err with op set; foreign errors pass through
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// New returns an *Error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error around orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns an *Error around orig with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only a non-nil err
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// NotFoundf returns a NotFound error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an InvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns a Validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// TooLargef returns a TooLarge error
func TooLargef(format string, a ...any) error { return Newf(ErrorCodeTooLarge, format, a...) }

// MethodNotAllowedf returns a MethodNotAllowed error
func MethodNotAllowedf(format string, a ...any) error {
	return Newf(ErrorCodeMethodNotAllowed, format, a...)
}

// PanicErrf returns a Panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Conflictf returns a Conflict error
func Conflictf(format string, a ...any) error { return Newf(ErrorCodeConflict, format, a...) }

// Unavailablef returns an Unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns an Unknown error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
