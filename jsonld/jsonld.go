// Package jsonld serializes extracted records into ready-to-embed
// schema.org JSON-LD script fragments.
package jsonld

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jwielgosz/schemify"
)

type person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type imageObject struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

type organization struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	Logo *imageObject `json:"logo,omitempty"`
}

type article struct {
	Context        string        `json:"@context"`
	Type           string        `json:"@type"`
	Headline       string        `json:"headline,omitempty"`
	Description    string        `json:"description,omitempty"`
	Author         *person       `json:"author,omitempty"`
	DatePublished  string        `json:"datePublished,omitempty"`
	DateModified   string        `json:"dateModified,omitempty"`
	Image          *imageObject  `json:"image,omitempty"`
	ArticleSection string        `json:"articleSection,omitempty"`
	ArticleBody    string        `json:"articleBody,omitempty"`
	Publisher      *organization `json:"publisher,omitempty"`
}

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type breadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []listItem `json:"itemListElement"`
}

type answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer answer `json:"acceptedAnswer"`
}

type faqPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []question `json:"mainEntity"`
}

const context = "https://schema.org"

// Render serializes the record into a JSON-LD script fragment for the
// given schema type.
func Render(data *schemify.ExtractedData, typ schemify.SchemaType) (string, error) {
	var payload any
	switch typ {
	case schemify.SchemaArticle:
		payload = articlePayload(data)
	case schemify.SchemaBreadcrumbs:
		payload = breadcrumbPayload(data)
	case schemify.SchemaFAQ:
		payload = faqPayload(data)
	default:
		return "", schemify.Errorf(schemify.EINVALID, "unsupported schema type %q", typ)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", schemify.Errorf(schemify.EINTERNAL, "encoding JSON-LD: %v", err)
	}

	return `<script type="application/ld+json">` + "\n" +
		strings.TrimRight(buf.String(), "\n") + "\n</script>", nil
}

func articlePayload(data *schemify.ExtractedData) article {
	a := article{
		Context:        context,
		Type:           "Article",
		Headline:       data.Title,
		Description:    data.Description,
		DatePublished:  data.DatePublished,
		DateModified:   data.DateModified,
		ArticleSection: data.ArticleSection,
		ArticleBody:    data.ArticleBody,
	}
	if data.Author != "" {
		a.Author = &person{Type: "Person", Name: data.Author, URL: data.AuthorURL}
	}
	if data.Image != nil {
		a.Image = &imageObject{
			Type:   "ImageObject",
			URL:    data.Image.URL,
			Width:  data.Image.Width,
			Height: data.Image.Height,
		}
	}
	if data.PublisherName != "" {
		a.Publisher = &organization{Type: "Organization", Name: data.PublisherName}
		if data.PublisherLogo != "" {
			a.Publisher.Logo = &imageObject{Type: "ImageObject", URL: data.PublisherLogo}
		}
	}
	return a
}

func breadcrumbPayload(data *schemify.ExtractedData) breadcrumbList {
	items := make([]listItem, 0, len(data.Breadcrumbs))
	for _, crumb := range data.Breadcrumbs {
		items = append(items, listItem{
			Type:     "ListItem",
			Position: crumb.Position,
			Name:     crumb.Name,
			Item:     crumb.URL,
		})
	}
	return breadcrumbList{Context: context, Type: "BreadcrumbList", ItemListElement: items}
}

func faqPayload(data *schemify.ExtractedData) faqPage {
	questions := make([]question, 0, len(data.FAQs))
	for _, faq := range data.FAQs {
		questions = append(questions, question{
			Type:           "Question",
			Name:           faq.Question,
			AcceptedAnswer: answer{Type: "Answer", Text: faq.Answer},
		})
	}
	return faqPage{Context: context, Type: "FAQPage", MainEntity: questions}
}
