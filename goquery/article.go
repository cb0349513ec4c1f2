package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jwielgosz/schemify"
)

// authorLinkSelectors is the ordered list of places an author link
// shows up, most specific first.
var authorLinkSelectors = []string{
	`a[rel="author"]`,
	`.author a`,
	`.byline a`,
	`a.author-link`,
	`a.author-name`,
	`[itemprop="author"] a`,
	`a[href*="/author/"]`,
}

// dateSelector matches every element that can carry a publication or
// modification timestamp, via meta properties or microdata attributes.
const dateSelector = `meta[property*="published_time"], meta[property*="modified_time"], ` +
	`[itemprop="datePublished"], [itemprop="dateModified"], time[datetime]`

func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := metaContent(doc, `meta[property="og:title"]`); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1, h2, h3, h4, h5, h6").First().Text())
}

func extractDescription(doc *goquery.Document) string {
	if d := metaContent(doc, `meta[name="description"]`); d != "" {
		return d
	}
	return metaContent(doc, `meta[property="og:description"]`)
}

func extractAuthor(doc *goquery.Document) string {
	if a := metaContent(doc, `meta[name="author"]`); a != "" {
		return a
	}
	if a := metaContent(doc, `meta[property="article:author"]`); a != "" {
		return a
	}
	return strings.TrimSpace(doc.Find(`[itemprop="author"] [itemprop="name"]`).First().Text())
}

func extractAuthorURL(doc *goquery.Document, pageURL string) string {
	for _, selector := range authorLinkSelectors {
		href, ok := doc.Find(selector).First().Attr("href")
		if !ok || href == "" {
			continue
		}
		return schemify.ResolveURL(pageURL, href)
	}
	return ""
}

// extractDates scans timestamp-bearing elements and classifies each by
// whether its property name mentions "published" or "modified". The
// first parseable value per class wins; unparseable dates are skipped,
// never an error.
func extractDates(doc *goquery.Document) (published, modified string) {
	doc.Find(dateSelector).Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("property")
		if !ok {
			name, _ = s.Attr("itemprop")
		}

		value, ok := s.Attr("content")
		if !ok {
			value, _ = s.Attr("datetime")
		}
		if value == "" {
			return
		}

		parsed, ok := schemify.ParseDate(value)
		if !ok {
			return
		}

		name = strings.ToLower(name)
		switch {
		case strings.Contains(name, "published") && published == "":
			published = parsed
		case strings.Contains(name, "modified") && modified == "":
			modified = parsed
		}
	})
	return published, modified
}

func extractImage(doc *goquery.Document, pageURL string) *schemify.Image {
	if u := metaContent(doc, `meta[property="og:image"]`); u != "" {
		return &schemify.Image{
			URL:    schemify.ResolveURL(pageURL, u),
			Width:  metaContent(doc, `meta[property="og:image:width"]`),
			Height: metaContent(doc, `meta[property="og:image:height"]`),
		}
	}
	if src, ok := doc.Find("img[src]").First().Attr("src"); ok && src != "" {
		return &schemify.Image{URL: schemify.ResolveURL(pageURL, src)}
	}
	return nil
}

func extractSection(doc *goquery.Document) string {
	return metaContent(doc, `meta[property="article:section"]`)
}

func extractPublisher(doc *goquery.Document) (name, logo string) {
	name = metaContent(doc, `meta[property="og:site_name"]`)

	sel := doc.Find(`[itemprop="publisher"] [itemprop="logo"], [itemtype*="Organization"] [itemprop="logo"]`).First()
	if content, ok := sel.Attr("content"); ok && content != "" {
		logo = strings.TrimSpace(content)
	} else if src, ok := sel.Attr("src"); ok {
		logo = strings.TrimSpace(src)
	}
	return name, logo
}
