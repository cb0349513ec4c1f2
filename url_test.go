package schemify_test

import (
	"testing"

	"github.com/jwielgosz/schemify"
	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative reference against absolute base", func(t *testing.T) {
		t.Parallel()

		got := schemify.ResolveURL("https://example.com/posts/hello", "/img/cover.png")
		assert.Equal(t, "https://example.com/img/cover.png", got)
	})

	t.Run("keeps absolute reference unchanged", func(t *testing.T) {
		t.Parallel()

		got := schemify.ResolveURL("https://example.com/", "https://cdn.example.org/a.jpg")
		assert.Equal(t, "https://cdn.example.org/a.jpg", got)
	})

	t.Run("resolves document-relative reference", func(t *testing.T) {
		t.Parallel()

		got := schemify.ResolveURL("https://example.com/a/b/", "c.html")
		assert.Equal(t, "https://example.com/a/b/c.html", got)
	})

	t.Run("returns ref unchanged on malformed base", func(t *testing.T) {
		t.Parallel()

		got := schemify.ResolveURL("http://[::1]:namedport", "/about")
		assert.Equal(t, "/about", got)
	})

	t.Run("returns ref unchanged on malformed ref", func(t *testing.T) {
		t.Parallel()

		got := schemify.ResolveURL("https://example.com/", "http://[bad url")
		assert.Equal(t, "http://[bad url", got)
	})

	t.Run("returns empty ref unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", schemify.ResolveURL("https://example.com/", ""))
	})
}

func TestCanonicalTrailingSlash(t *testing.T) {
	t.Parallel()

	t.Run("appends missing trailing slash", func(t *testing.T) {
		t.Parallel()

		got := schemify.CanonicalTrailingSlash("https://example.com/a/b")
		assert.Equal(t, "https://example.com/a/b/", got)
	})

	t.Run("collapses repeated trailing slashes", func(t *testing.T) {
		t.Parallel()

		got := schemify.CanonicalTrailingSlash("https://example.com/a///")
		assert.Equal(t, "https://example.com/a/", got)
	})

	t.Run("preserves query and fragment", func(t *testing.T) {
		t.Parallel()

		got := schemify.CanonicalTrailingSlash("https://example.com/a?x=1#top")
		assert.Equal(t, "https://example.com/a/?x=1#top", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := schemify.CanonicalTrailingSlash("https://example.com/a/b?x=1#f")
		twice := schemify.CanonicalTrailingSlash(once)
		assert.Equal(t, once, twice)
	})

	t.Run("normalizes bare origin", func(t *testing.T) {
		t.Parallel()

		got := schemify.CanonicalTrailingSlash("https://example.com")
		assert.Equal(t, "https://example.com/", got)
	})
}

func TestTitleizeSegment(t *testing.T) {
	t.Parallel()

	t.Run("replaces hyphens and title-cases words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "B C", schemify.TitleizeSegment("b-c"))
		assert.Equal(t, "Getting Started", schemify.TitleizeSegment("getting-started"))
	})

	t.Run("keeps existing capitalization of later letters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "IOS Apps", schemify.TitleizeSegment("iOS-apps"))
	})

	t.Run("handles single word", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Blog", schemify.TitleizeSegment("blog"))
	})
}
