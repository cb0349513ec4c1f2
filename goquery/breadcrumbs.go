package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jwielgosz/schemify"
)

// breadcrumbSelectors lists breadcrumb-container link selectors in
// priority order. The first selector with at least one match wins.
var breadcrumbSelectors = []string{
	".breadcrumb a",
	".breadcrumbs a",
	"ul.breadcrumb li a",
	`[itemtype*="BreadcrumbList"] a`,
	`nav[aria-label="breadcrumb"] a, nav[aria-label="Breadcrumb"] a, nav[aria-label="Breadcrumbs"] a`,
}

// extractBreadcrumbs tries the selector cascade and falls back to a
// trail synthesized from the URL path. Positions are always a
// contiguous 1-based sequence in document order.
func extractBreadcrumbs(doc *goquery.Document, pageURL string) []schemify.Breadcrumb {
	for _, selector := range breadcrumbSelectors {
		links := doc.Find(selector)
		if links.Length() == 0 {
			continue
		}
		var crumbs []schemify.Breadcrumb
		links.Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			crumbs = append(crumbs, schemify.Breadcrumb{
				Name:     strings.TrimSpace(a.Text()),
				URL:      schemify.CanonicalTrailingSlash(schemify.ResolveURL(pageURL, href)),
				Position: len(crumbs) + 1,
			})
		})
		return crumbs
	}
	return syntheticBreadcrumbs(pageURL)
}

// syntheticBreadcrumbs derives a trail from the URL path: a Home entry
// at the origin followed by one entry per path segment, each pointing
// at the cumulative path prefix.
func syntheticBreadcrumbs(pageURL string) []schemify.Breadcrumb {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil
	}
	origin := u.Scheme + "://" + u.Host

	crumbs := []schemify.Breadcrumb{{Name: "Home", URL: origin + "/", Position: 1}}

	prefix := origin
	for _, segment := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if segment == "" {
			continue
		}
		prefix += "/" + segment
		crumbs = append(crumbs, schemify.Breadcrumb{
			Name:     schemify.TitleizeSegment(segment),
			URL:      prefix + "/",
			Position: len(crumbs) + 1,
		})
	}
	return crumbs
}
