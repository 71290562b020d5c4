package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestCodeForStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCode
		ok     bool
	}{
		{http.StatusOK, ErrorCodeUnknown, false},
		{http.StatusTooManyRequests, ErrorCodeTooManyRequests, true},
		{http.StatusBadGateway, ErrorCodeUnavailable, true},
		{http.StatusRequestTimeout, ErrorCodeUnavailable, true},
		{http.StatusNotFound, ErrorCodeNotFound, true},
		{http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, true},
		{http.StatusUnauthorized, ErrorCodeInvalidArgument, true},
	}
	for _, c := range cases {
		got, ok := CodeForStatus(c.status)
		if got != c.want || ok != c.ok {
			t.Fatalf("CodeForStatus(%d) = %v,%v want %v,%v", c.status, got, ok, c.want, c.ok)
		}
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", AnalysisFailed(context.Canceled), false},
		{"deadline", context.DeadlineExceeded, true},
		{"net timeout", fmt.Errorf("dial: %w", timeoutErr{}), true},
		{"429", &StatusError{Status: 429}, true},
		{"503 wrapped", AnalysisFailed(&StatusError{Status: 503, Body: "busy"}), true},
		{"401", AnalysisFailed(&StatusError{Status: 401}), false},
		{"unavailable code", Unavailablef("down"), true},
		{"not found", NotFoundf("x"), false},
		{"foreign", stderrs.New("x"), false},
	}
	for _, c := range cases {
		if got := Retryable(c.err); got != c.want {
			t.Fatalf("%s: Retryable = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestStatusError_Message(t *testing.T) {
	if (&StatusError{Status: 500}).Error() != "upstream status 500" {
		t.Fatalf("bare message mismatch")
	}
	if (&StatusError{Status: 400, Body: "bad"}).Error() != "upstream status 400: bad" {
		t.Fatalf("body message mismatch")
	}
}
