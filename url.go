package schemify

import (
	"net/url"
	"strings"
	"unicode"
)

// ResolveURL resolves ref against base and returns the absolute URL.
// Malformed input never causes an error: if either URL fails to parse,
// ref is returned unchanged.
func ResolveURL(base, ref string) string {
	if ref == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// CanonicalTrailingSlash rewrites raw so its path ends with exactly one
// slash, preserving query and fragment. The operation is idempotent.
// Unparseable input is returned unchanged.
func CanonicalTrailingSlash(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/"
	return u.String()
}

// TitleizeSegment converts a URL path segment into a human-readable
// breadcrumb label: hyphens become spaces and the first letter of each
// word is upper-cased.
func TitleizeSegment(segment string) string {
	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
