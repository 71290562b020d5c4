package errors

// Classification of failures from remote analysis backends

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
)

// CodeForStatus maps an upstream HTTP status to an ErrorCode.
// 2xx has no code; ok is false then
func CodeForStatus(status int) (ErrorCode, bool) {
	switch {
	case status >= 200 && status < 300:
		return ErrorCodeUnknown, false
	case status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests, true
	case status == http.StatusRequestTimeout, status >= 500:
		return ErrorCodeUnavailable, true
	case status == http.StatusNotFound:
		return ErrorCodeNotFound, true
	case status == http.StatusRequestEntityTooLarge:
		return ErrorCodeTooLarge, true
	default:
		return ErrorCodeInvalidArgument, true
	}
}

// AnalysisFailed wraps cause so that errors.Is(err, ErrAnalysisFailed) holds.
// A nil cause yields nil
func AnalysisFailed(cause error) error {
	if cause == nil {
		return nil
	}
	return Wrap(cause, ErrorCodeUnavailable, ErrAnalysisFailed.Error())
}

// AnalysisFailedf is AnalysisFailed with a formatted cause
func AnalysisFailedf(format string, a ...any) error {
	return AnalysisFailed(fmt.Errorf(format, a...))
}

// StatusError is a non-2xx upstream reply
type StatusError struct {
	Status int
	Body   string
}

func (s *StatusError) Error() string {
	if s.Body == "" {
		return fmt.Sprintf("upstream status %d", s.Status)
	}
	return fmt.Sprintf("upstream status %d: %s", s.Status, s.Body)
}

// Retryable reports whether err is worth retrying: Unavailable or TooManyRequests
// codes, upstream 429/5xx replies, and network timeouts. Local cancellation is never
// retryable
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if stderrs.As(err, &se) {
		c, ok := CodeForStatus(se.Status)
		return ok && (c == ErrorCodeUnavailable || c == ErrorCodeTooManyRequests)
	}
	var ne net.Error
	if stderrs.As(err, &ne) && ne.Timeout() {
		return true
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	}
	return false
}
