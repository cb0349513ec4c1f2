package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Article body extraction thresholds. Phase one wins outright when it
// collects at least minPhaseOneLen characters; anything at or below
// minBodyLen after whitespace collapsing is treated as no body at all.
const (
	minBodyLen      = 200
	minPhaseOneLen  = 500
	minParagraphs   = 5
	minParagraphLen = 20
)

// bodyParagraphSelectors lists paragraph containers in priority order
// for the first extraction phase.
var bodyParagraphSelectors = []string{
	"article p",
	".post-content p",
	".entry-content p",
	".article-body p",
	".article-content p",
	".story-body p",
	"main p",
	".content p",
}

// bodyContainerSelectors lists whole-content containers for the
// second, coarser phase.
var bodyContainerSelectors = []string{
	`[itemprop="articleBody"]`,
	"article",
	".post-content",
	".entry-content",
	".article-body",
	"main",
	"#content",
}

// boilerplateSelector matches the descendants stripped from a cloned
// container before its text is taken.
const boilerplateSelector = "nav, header, footer, aside, script, style, noscript, form, " +
	".ad, .ads, .advertisement, .social, .share, .sharing, .comments, #comments, " +
	".sidebar, .related, .related-posts, .tags, .categories, .post-meta, .entry-meta, " +
	".breadcrumb, .breadcrumbs"

// extractBody runs the two-phase body heuristic. Phase one concatenates
// substantial paragraphs from the densest paragraph container; if that
// comes up short, phase two takes the stripped text of a whole content
// container. The result is absent unless it exceeds minBodyLen after
// whitespace collapsing.
func extractBody(doc *goquery.Document) string {
	best := ""
	for _, selector := range bodyParagraphSelectors {
		paragraphs := doc.Find(selector)
		if paragraphs.Length() <= minParagraphs {
			continue
		}
		var parts []string
		paragraphs.Each(func(_ int, p *goquery.Selection) {
			text := strings.TrimSpace(p.Text())
			if len(text) > minParagraphLen {
				parts = append(parts, text)
			}
		})
		if joined := strings.Join(parts, " "); len(joined) > len(best) {
			best = joined
		}
	}

	if len(best) < minPhaseOneLen {
		if alt := extractBodyFromContainers(doc); len(alt) > len(best) {
			best = alt
		}
	}

	best = collapseWhitespace(best)
	if len(best) <= minBodyLen {
		return ""
	}
	return best
}

// extractBodyFromContainers clones the first match of each container
// selector, strips boilerplate descendants, and keeps the longest text
// exceeding minBodyLen.
func extractBodyFromContainers(doc *goquery.Document) string {
	best := ""
	for _, selector := range bodyContainerSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		clone := container.Clone()
		clone.Find(boilerplateSelector).Remove()
		text := collapseWhitespace(clone.Text())
		if len(text) > minBodyLen && len(text) > len(best) {
			best = text
		}
	}
	return best
}
