package schemify

import "context"

// SchemaType selects which schema.org fragment a scrape is for. The
// type drives acquisition strategy: FAQ pages are rendered in a browser
// so tabbed or lazy-loaded panels become visible, everything else is a
// plain HTTP fetch.
type SchemaType string

// Supported schema types.
const (
	SchemaArticle     SchemaType = "article"
	SchemaBreadcrumbs SchemaType = "breadcrumbs"
	SchemaFAQ         SchemaType = "faq"
)

// ParseSchemaType validates a raw type string.
// Returns EINVALID for anything other than the supported types.
func ParseSchemaType(s string) (SchemaType, error) {
	switch SchemaType(s) {
	case SchemaArticle, SchemaBreadcrumbs, SchemaFAQ:
		return SchemaType(s), nil
	}
	return "", Errorf(EINVALID, "unsupported schema type %q", s)
}

// Image is an article's primary image with optional dimensions.
type Image struct {
	URL    string `json:"url"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// Breadcrumb is one entry of a page's breadcrumb trail. Position is
// 1-based and always matches the entry's index in the trail.
type Breadcrumb struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// FAQ is one question/answer pair found on a page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ExtractedData is the result of scraping a single URL. Every field is
// optional; a field the extractors could not find is simply zero. The
// record is built once per scrape and never mutated afterwards.
type ExtractedData struct {
	Title          string       `json:"title,omitempty"`
	Description    string       `json:"description,omitempty"`
	Author         string       `json:"author,omitempty"`
	AuthorURL      string       `json:"authorUrl,omitempty"`
	DatePublished  string       `json:"datePublished,omitempty"`
	DateModified   string       `json:"dateModified,omitempty"`
	Image          *Image       `json:"image,omitempty"`
	ArticleSection string       `json:"articleSection,omitempty"`
	ArticleBody    string       `json:"articleBody,omitempty"`
	PublisherName  string       `json:"publisherName,omitempty"`
	PublisherLogo  string       `json:"publisherLogo,omitempty"`
	Breadcrumbs    []Breadcrumb `json:"breadcrumbs,omitempty"`
	FAQs           []FAQ        `json:"faqs,omitempty"`
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch returns the page HTML. Acquisition failures are reported
	// with code EFETCH.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor runs the heuristic cascades over raw HTML and assembles one
// ExtractedData record. pageURL is the address the HTML was fetched
// from; it anchors relative URL resolution and the synthetic breadcrumb
// fallback.
type Extractor interface {
	Extract(html string, pageURL string) (*ExtractedData, error)
}

// Scraper is the single operation the core exposes: acquire a page and
// extract its structured data.
type Scraper interface {
	Scrape(ctx context.Context, url string, typ SchemaType) (*ExtractedData, error)
}

// Metrics records scrape outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	// ObserveScrape records one finished scrape call. outcome is "ok"
	// or an error code from this package.
	ObserveScrape(typ SchemaType, outcome string, seconds float64)
}
