package mock

import "github.com/jwielgosz/schemify"

var _ schemify.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of schemify.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*schemify.ExtractedData, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*schemify.ExtractedData, error) {
	return e.ExtractFn(html, pageURL)
}
