// Package config reads application settings from the environment.
// Must* getters panic through the logger on missing or invalid values; May* getters
// fall back to a default and log a warning when a value does not parse
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"cictt/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("CORE_API_")
type Conf struct{ prefix string }

// New returns an unprefixed view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// LoadDotenv loads .env style files into the process environment without overriding
// variables that are already set. Missing files are skipped; with no arguments
// ".env" in the working directory is tried
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		switch {
		case err == nil:
			logger.Get().Debug().Str("file", f).Msg("loaded env file")
		case errors.Is(err, fs.ErrNotExist):
		default:
			return err
		}
	}
	return nil
}

func (c Conf) panicf(k, v, msg string) {
	ev := logger.Get().Panic().Str("key", c.key(k))
	if v != "" {
		ev = ev.Str("value", v)
	}
	ev.Msg(msg)
}

// MustString returns the value or panics when it is empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		c.panicf(key, "", "missing required env")
	}
	return v
}

// MustInt returns an integer value or panics
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.panicf(key, s, "invalid int value")
	}
	return v
}

// MustDuration returns a duration value or panics
func (c Conf) MustDuration(key string) time.Duration {
	s := c.MustString(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		c.panicf(key, s, "invalid duration (e.g. 250ms, 2s, 1m)")
	}
	return d
}

// MustURL returns an absolute URL or panics
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		c.panicf(key, s, "invalid absolute URL")
	}
	return u
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def; unparsable values log and use def
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayInt64 is MayInt for byte sizes and other wide values
func (c Conf) MayInt64(key string, def int64) int64 {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int64("default", def).Msg("invalid int64; using default")
		return def
	}
	return v
}

// MayBool returns the value or def; unparsable values log and use def
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def; unparsable values log and use def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayAddr returns a listen address. A bare port "4000" becomes ":4000"
func (c Conf) MayAddr(key, def string) string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if p, err := strconv.Atoi(s); err == nil {
		if p < 1 || p > 65535 {
			logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Str("default", def).Msg("invalid port; using default")
			return def
		}
		return ":" + s
	}
	return s
}

// MayCSV splits a comma list, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value lowercased if it is one of allowed, def when empty,
// and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
