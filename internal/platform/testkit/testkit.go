// Package testkit holds small assertion and seam helpers shared by package tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless haystack contains needle. The haystack is dumped to a
// temp file so long outputs stay readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, dump(t, haystack))
}

// MustNotContain is the inverse of MustContain
func MustNotContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		return
	}
	t.Fatalf("expected output not to contain %q\n\nfull output written to %s", needle, dump(t, haystack))
}

func dump(t *testing.T, s string) string {
	p := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(p, []byte(s), 0o600)
	return p
}
