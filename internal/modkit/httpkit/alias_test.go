package httpkit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "cictt/internal/platform/errors"
)

func run(h Handler, r *http.Request) (int, Envelope) {
	rec := httptest.NewRecorder()
	h(rec, r)
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec.Code, env
}

func post(body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	return httptest.NewRequest(http.MethodPost, "/x", rd)
}

func TestHandle_PassThrough(t *testing.T) {
	h := Handle(func(_ *http.Request) Response { return Created("made") })
	code, env := run(h, httptest.NewRequest(http.MethodGet, "/x", nil))
	if code != http.StatusCreated || env.Data != "made" {
		t.Fatalf("got %d %+v", code, env)
	}
}

func TestCall(t *testing.T) {
	cases := []struct {
		name string
		fn   func(*http.Request) (any, error)
		code int
	}{
		{"plain value", func(*http.Request) (any, error) { return map[string]string{"a": "1"}, nil }, http.StatusOK},
		{"response passthrough", func(*http.Request) (any, error) { return Created("z"), nil }, http.StatusCreated},
		{"no content", func(*http.Request) (any, error) { return NoContent(), nil }, http.StatusNoContent},
		{"coded error", func(*http.Request) (any, error) { return nil, perr.NotFoundf("nope") }, http.StatusNotFound},
		{"plain error", func(*http.Request) (any, error) { return nil, errors.New("nah") }, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := run(Call(tc.fn), httptest.NewRequest(http.MethodGet, "/x", nil))
			if code != tc.code {
				t.Fatalf("status = %d, want %d", code, tc.code)
			}
		})
	}
}

type textIn struct {
	Text string `json:"text" validate:"required"`
}

func TestJSON_DecodesAndValidates(t *testing.T) {
	h := JSON(func(_ *http.Request, in textIn) (any, error) {
		return strings.ToUpper(in.Text), nil
	})

	code, env := run(h, post(`{"text":"icing"}`))
	if code != http.StatusOK || env.Data != "ICING" {
		t.Fatalf("ok path: %d %+v", code, env)
	}

	cases := []struct {
		name, body string
		code       int
		field      string
	}{
		{"empty body", "", http.StatusBadRequest, ""},
		{"invalid json", `{"text":`, http.StatusBadRequest, ""},
		{"unknown field", `{"text":"x","extra":1}`, http.StatusBadRequest, ""},
		{"failed validation", `{"text":""}`, http.StatusBadRequest, "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := run(h, post(tc.body))
			if code != tc.code || env.Error == "" {
				t.Fatalf("got %d %+v", code, env)
			}
			if tc.field != "" && env.Field != tc.field {
				t.Fatalf("field = %q, want %q", env.Field, tc.field)
			}
		})
	}
}

func TestJSON_BodyCap(t *testing.T) {
	h := JSON(func(_ *http.Request, in textIn) (any, error) { return in.Text, nil }, BindOptions{MaxBytes: 16})
	code, _ := run(h, post(`{"text":"`+strings.Repeat("a", 64)+`"}`))
	if code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", code)
	}
}

func TestJSON_HandlerError(t *testing.T) {
	h := JSON(func(_ *http.Request, _ textIn) (any, error) { return nil, perr.Conflictf("already there") })
	code, env := run(h, post(`{"text":"x"}`))
	if code != http.StatusConflict || env.Error != "already there" {
		t.Fatalf("got %d %+v", code, env)
	}
}
