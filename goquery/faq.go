package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jwielgosz/schemify"
)

// maxFAQs caps the number of question/answer pairs per page.
const maxFAQs = 20

// faqContainerSelector matches elements sites commonly dedicate to FAQ
// sections.
const faqContainerSelector = ".faq, .faqs, #faq, #faqs, .faq-section, .faq-container, .faq-list"

// extractFAQs runs the five-method FAQ cascade. Microdata and embedded
// JSON-LD (methods one and two) always run and their results merge; the
// DOM-pattern fallbacks (methods three to five) each run only while the
// accumulated count is still zero. Any panic during the whole procedure
// yields an empty list rather than propagating.
func extractFAQs(doc *goquery.Document) (faqs []schemify.FAQ) {
	defer func() {
		if r := recover(); r != nil {
			faqs = nil
		}
	}()

	pairs := faqsFromMicrodata(doc)
	pairs = append(pairs, faqsFromJSONLD(doc)...)
	if len(pairs) == 0 {
		pairs = faqsFromContainerHeadings(doc)
	}
	if len(pairs) == 0 {
		pairs = faqsFromHeadingSiblings(doc)
	}
	if len(pairs) == 0 {
		pairs = faqsFromLabelledItems(doc)
	}

	return dedupeFAQs(pairs)
}

// faqsFromMicrodata extracts question/answer pairs from FAQPage-typed
// microdata containers.
func faqsFromMicrodata(doc *goquery.Document) []schemify.FAQ {
	var out []schemify.FAQ
	doc.Find(`[itemtype*="FAQPage"]`).Each(func(_ int, page *goquery.Selection) {
		page.Find(`[itemtype*="Question"]`).Each(func(_ int, q *goquery.Selection) {
			answer := q.Find(`[itemprop="acceptedAnswer"] [itemprop="text"]`).First().Text()
			if strings.TrimSpace(answer) == "" {
				answer = q.Find(`[itemprop="acceptedAnswer"]`).First().Text()
			}
			out = append(out, schemify.FAQ{
				Question: q.Find(`[itemprop="name"]`).First().Text(),
				Answer:   answer,
			})
		})
	})
	return out
}

// faqsFromJSONLD extracts pairs from embedded FAQPage structured data.
// A malformed JSON payload in one script tag never aborts the scan of
// the remaining tags.
func faqsFromJSONLD(doc *goquery.Document) []schemify.FAQ {
	var out []schemify.FAQ
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return
		}
		for _, node := range flattenLD(payload) {
			obj, ok := node.(map[string]any)
			if !ok || !hasLDType(obj, "FAQPage") {
				continue
			}
			entities, _ := obj["mainEntity"].([]any)
			for _, entity := range entities {
				q, ok := entity.(map[string]any)
				if !ok {
					continue
				}
				name, _ := q["name"].(string)
				var answer string
				if accepted, ok := q["acceptedAnswer"].(map[string]any); ok {
					answer, _ = accepted["text"].(string)
				}
				out = append(out, schemify.FAQ{Question: name, Answer: answer})
			}
		}
	})
	return out
}

// flattenLD returns the JSON-LD nodes a payload may describe: the value
// itself, top-level array elements, and @graph members.
func flattenLD(v any) []any {
	switch t := v.(type) {
	case []any:
		var nodes []any
		for _, el := range t {
			nodes = append(nodes, flattenLD(el)...)
		}
		return nodes
	case map[string]any:
		nodes := []any{t}
		if graph, ok := t["@graph"].([]any); ok {
			for _, el := range graph {
				nodes = append(nodes, flattenLD(el)...)
			}
		}
		return nodes
	}
	return nil
}

// hasLDType reports whether a JSON-LD node's @type (string or list)
// names the wanted type.
func hasLDType(obj map[string]any, want string) bool {
	switch t := obj["@type"].(type) {
	case string:
		return t == want
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

// faqsFromContainerHeadings pairs headings inside a FAQ container with
// their next sibling element as the answer. goquery's Next skips text
// and comment nodes, so empty inter-element whitespace is never an
// answer.
func faqsFromContainerHeadings(doc *goquery.Document) []schemify.FAQ {
	var out []schemify.FAQ
	doc.Find(faqContainerSelector).Each(func(_ int, container *goquery.Selection) {
		container.Find("h2, h3, h4, h5").Each(func(_ int, h *goquery.Selection) {
			answer := h.Next()
			if answer.Length() == 0 {
				return
			}
			out = append(out, schemify.FAQ{Question: h.Text(), Answer: answer.Text()})
		})
	})
	return out
}

// faqsFromHeadingSiblings is the generic fallback: any h3 immediately
// followed by a paragraph or block element.
func faqsFromHeadingSiblings(doc *goquery.Document) []schemify.FAQ {
	var out []schemify.FAQ
	doc.Find("h3").Each(func(_ int, h *goquery.Selection) {
		next := h.Next()
		if next.Length() == 0 || !next.Is("p, div") {
			return
		}
		out = append(out, schemify.FAQ{Question: h.Text(), Answer: next.Text()})
	})
	return out
}

// faqsFromLabelledItems is the last fallback: items inside a FAQ
// container carrying explicitly labelled question and answer elements.
func faqsFromLabelledItems(doc *goquery.Document) []schemify.FAQ {
	var out []schemify.FAQ
	doc.Find(faqContainerSelector).Each(func(_ int, container *goquery.Selection) {
		container.Find(`[class*="item"], [class*="entry"], li`).Each(func(_ int, item *goquery.Selection) {
			question := item.Find(`[class*="question"], dt`).First()
			answer := item.Find(`[class*="answer"], dd`).First()
			if question.Length() == 0 || answer.Length() == 0 {
				return
			}
			out = append(out, schemify.FAQ{Question: question.Text(), Answer: answer.Text()})
		})
	})
	return out
}

// dedupeFAQs trims all text, drops pairs with an empty side, removes
// case-insensitive duplicate questions keeping the first occurrence,
// and caps the result at maxFAQs.
func dedupeFAQs(pairs []schemify.FAQ) []schemify.FAQ {
	seen := make(map[string]bool, len(pairs))
	var out []schemify.FAQ
	for _, pair := range pairs {
		question := strings.TrimSpace(pair.Question)
		answer := strings.TrimSpace(pair.Answer)
		if question == "" || answer == "" {
			continue
		}
		key := strings.ToLower(question)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, schemify.FAQ{Question: question, Answer: answer})
		if len(out) == maxFAQs {
			break
		}
	}
	return out
}
