package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// para returns a paragraph of predictable, substantial text.
func para(i int) string {
	return fmt.Sprintf("<p>Paragraph %d carries enough meaningful words to count as real article prose.</p>", i)
}

func TestExtractor_ArticleBody(t *testing.T) {
	t.Parallel()

	t.Run("concatenates substantial paragraphs from a dense container", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString(`<html><body><article>`)
		for i := 1; i <= 8; i++ {
			sb.WriteString(para(i))
		}
		sb.WriteString(`<p>tiny</p>`) // under the paragraph length floor
		sb.WriteString(`</article></body></html>`)

		data := extract(t, sb.String(), "https://example.com/post")
		assert.Contains(t, data.ArticleBody, "Paragraph 1 carries enough")
		assert.Contains(t, data.ArticleBody, "Paragraph 8 carries enough")
		assert.NotContains(t, data.ArticleBody, "tiny")
		assert.Greater(t, len(data.ArticleBody), 200)
	})

	t.Run("falls back to a stripped whole container when paragraphs are sparse", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("Real article prose flows here without interruption. ", 10)
		html := `<html><body><article>
<nav>Home / Posts / Current</nav>
<div class="share">share buttons</div>
<div>` + long + `</div>
<footer>copyright</footer>
</article></body></html>`

		data := extract(t, html, "https://example.com/post")
		assert.Contains(t, data.ArticleBody, "Real article prose flows here")
		assert.NotContains(t, data.ArticleBody, "share buttons")
		assert.NotContains(t, data.ArticleBody, "copyright")
		assert.NotContains(t, data.ArticleBody, "Home / Posts")
	})

	t.Run("never returns a body at or under 200 characters", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>A short note that is clearly under the body threshold.</p></article></body></html>`

		data := extract(t, html, "https://example.com/post")
		assert.Empty(t, data.ArticleBody)
	})

	t.Run("collapses whitespace in the result", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("Spaced    out   prose\n\twith   messy   whitespace. ", 12)
		html := `<html><body><main><div>` + long + `</div></main></body></html>`

		data := extract(t, html, "https://example.com/post")
		assert.NotContains(t, data.ArticleBody, "  ")
		assert.Contains(t, data.ArticleBody, "Spaced out prose with messy whitespace.")
	})
}
