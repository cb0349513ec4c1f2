package mock

import (
	"context"

	"github.com/jwielgosz/schemify"
)

var _ schemify.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of schemify.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string, typ schemify.SchemaType) (*schemify.ExtractedData, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string, typ schemify.SchemaType) (*schemify.ExtractedData, error) {
	return s.ScrapeFn(ctx, url, typ)
}
