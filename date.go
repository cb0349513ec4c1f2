package schemify

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a date string found in page metadata into a
// canonical RFC 3339 UTC instant. The reported ok is false when the
// input cannot be interpreted as a date; unparseable dates are an
// absent value, not an error.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}
