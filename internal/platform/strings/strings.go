// Package strings provides small string helpers shared by modules and commands
package strings

import std "strings"

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /analysis or /taxonomy
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Code normalizes a user-typed category code: trimmed, upper case
func Code(s string) string { return std.ToUpper(std.TrimSpace(s)) }

// Pair splits "key=value" and trims both halves; ok is false without a separator
// or with an empty key
func Pair(s string) (key, value string, ok bool) {
	k, v, found := std.Cut(s, "=")
	k, v = std.TrimSpace(k), std.TrimSpace(v)
	if !found || k == "" {
		return "", "", false
	}
	return k, v, true
}
