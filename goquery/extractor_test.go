package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("assembles one record from a full article page", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>Shipping Go Services</title>
<meta name="description" content="Notes on shipping Go services.">
<meta name="author" content="Jane Roe">
<meta property="og:site_name" content="Example Blog">
<meta property="og:image" content="https://example.com/cover.png">
<meta property="article:section" content="Engineering">
<meta property="article:published_time" content="2024-01-15T09:00:00Z">
</head><body>
<div class="breadcrumb"><a href="/">Home</a><a href="/blog">Blog</a></div>
<a rel="author" href="/authors/jane">Jane</a>
<article><p>Body text goes here.</p></article>
</body></html>`

		data := extract(t, html, "https://example.com/blog/shipping-go")

		assert.Equal(t, "Shipping Go Services", data.Title)
		assert.Equal(t, "Notes on shipping Go services.", data.Description)
		assert.Equal(t, "Jane Roe", data.Author)
		assert.Equal(t, "https://example.com/authors/jane", data.AuthorURL)
		assert.Equal(t, "2024-01-15T09:00:00Z", data.DatePublished)
		require.NotNil(t, data.Image)
		assert.Equal(t, "https://example.com/cover.png", data.Image.URL)
		assert.Equal(t, "Engineering", data.ArticleSection)
		assert.Equal(t, "Example Blog", data.PublisherName)
		assert.Len(t, data.Breadcrumbs, 2)
	})

	t.Run("produces an all-absent record for an empty document", func(t *testing.T) {
		t.Parallel()

		data := extract(t, "", "https://example.com/")

		assert.Empty(t, data.Title)
		assert.Empty(t, data.Description)
		assert.Nil(t, data.Image)
		assert.Empty(t, data.FAQs)
		// The synthetic fallback still yields a Home breadcrumb.
		assert.Len(t, data.Breadcrumbs, 1)
	})
}
