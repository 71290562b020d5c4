// Package normalize prepares document text for keyword matching.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Lowercase (Unicode aware, language neutral)
// 3 Collapse every whitespace run to one ASCII space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// casers are stateful, so each call borrows its own
var lowerPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

// Text returns the normalized form of s following the pipeline described above.
// The result is idempotent: Text(Text(s)) == Text(s)
func Text(s string) string {
	if s == "" {
		return ""
	}

	// 1
	s = strings.ToValidUTF8(s, "")

	// 2
	c := lowerPool.Get().(cases.Caser)
	ls, _, err := transform.String(c, s)
	c.Reset()
	lowerPool.Put(c)
	if err != nil {
		ls = strings.ToLower(s)
	}

	// 3
	return collapseSpaces(ls)
}

// IsBlank reports whether s has no non-whitespace content
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// collapseSpaces converts whitespace runs (newlines included) to a single space and
// trims both ends
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
