// Package matcher counts occurrences of taxonomy phrases in normalized text.
//
// Single-word phrases match as whole words. Multi-word phrases match a run of
// adjacent tokens where each token contains the corresponding phrase part, so
// "wind shear" is found in "wind shears". Word characters are ASCII letters,
// digits and underscore
package matcher

import (
	"regexp"
	"strings"
	"sync"
)

var (
	partSplit = regexp.MustCompile(`[-\s]+`)
	tokenRe   = regexp.MustCompile(`\b\w+(?:[-_]?\w+)*\b`)
)

// Phrase is a compiled keyword phrase
type Phrase struct {
	Raw   string
	Parts []string
	re    *regexp.Regexp // single-part only
}

// Compile splits phrase on hyphens and whitespace. Empty parts are dropped; a
// phrase with no parts never matches
func Compile(phrase string) *Phrase {
	p := &Phrase{Raw: phrase}
	for _, s := range partSplit.Split(phrase, -1) {
		if s != "" {
			p.Parts = append(p.Parts, s)
		}
	}
	if len(p.Parts) == 1 {
		p.re = regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Parts[0]) + `\b`)
	}
	return p
}

// Multi reports whether the phrase matches by token window
func (p *Phrase) Multi() bool { return len(p.Parts) > 1 }

// Tokenize returns word tokens; internal hyphens and underscores stay inside a token
func Tokenize(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// Doc is a text prepared for repeated phrase counting. Tokens are computed on
// first multi-part lookup. A Doc is not safe for concurrent use
type Doc struct {
	text      string
	tokens    []string
	tokenized bool
}

// NewDoc wraps already-normalized text
func NewDoc(text string) *Doc { return &Doc{text: text} }

// Text returns the wrapped text
func (d *Doc) Text() string { return d.text }

// Tokens returns the token sequence
func (d *Doc) Tokens() []string {
	if !d.tokenized {
		d.tokens = Tokenize(d.text)
		d.tokenized = true
	}
	return d.tokens
}

// Count returns the occurrence count of p in the document.
// Single-part: non-overlapping whole-word matches.
// Multi-part: number of window positions that match, advancing one token at a time
func (d *Doc) Count(p *Phrase) int {
	switch {
	case len(p.Parts) == 0 || d.text == "":
		return 0
	case p.re != nil:
		return len(p.re.FindAllStringIndex(d.text, -1))
	}
	return countWindows(d.Tokens(), p.Parts)
}

func countWindows(tokens, parts []string) int {
	n := 0
	for i := 0; i+len(parts) <= len(tokens); i++ {
		ok := true
		for j, part := range parts {
			if !strings.Contains(tokens[i+j], part) {
				ok = false
				break
			}
		}
		if ok {
			n++
		}
	}
	return n
}

// compiled phrases are shared across calls; the taxonomy vocabulary is fixed so
// the cache stays bounded in practice
var cache sync.Map // string -> *Phrase

// Lookup returns a cached compiled phrase
func Lookup(phrase string) *Phrase {
	if v, ok := cache.Load(phrase); ok {
		return v.(*Phrase)
	}
	v, _ := cache.LoadOrStore(phrase, Compile(phrase))
	return v.(*Phrase)
}

// Occurrences reports whether phrase occurs in text and how often.
// text must already be normalized
func Occurrences(text, phrase string) (bool, int) {
	n := NewDoc(text).Count(Lookup(phrase))
	return n > 0, n
}
