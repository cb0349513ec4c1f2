// Package goquery implements the heuristic extraction cascades over
// parsed HTML documents. Each metadata field is extracted by a short
// ordered list of strategies; the first non-empty result wins and a
// field no strategy matches is simply absent.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jwielgosz/schemify"
)

// Ensure Extractor implements schemify.Extractor at compile time.
var _ schemify.Extractor = (*Extractor)(nil)

// Extractor assembles an ExtractedData record from raw HTML. It is
// stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML once and runs every field extractor over the
// same document tree. pageURL anchors relative URL resolution and the
// synthetic breadcrumb fallback.
func (e *Extractor) Extract(html string, pageURL string) (*schemify.ExtractedData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, schemify.Errorf(schemify.EINVALID, "parsing HTML: %v", err)
	}

	data := &schemify.ExtractedData{
		Title:          extractTitle(doc),
		Description:    extractDescription(doc),
		Author:         extractAuthor(doc),
		AuthorURL:      extractAuthorURL(doc, pageURL),
		Image:          extractImage(doc, pageURL),
		ArticleSection: extractSection(doc),
		ArticleBody:    extractBody(doc),
		Breadcrumbs:    extractBreadcrumbs(doc, pageURL),
		FAQs:           extractFAQs(doc),
	}
	data.DatePublished, data.DateModified = extractDates(doc)
	data.PublisherName, data.PublisherLogo = extractPublisher(doc)

	return data, nil
}

// metaContent returns the trimmed content attribute of the first
// element matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// collapseWhitespace reduces every run of whitespace to a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
