// Package scrape composes page acquisition and extraction into the
// single scrape operation the service exposes.
package scrape

import (
	"context"
	"time"

	"github.com/jwielgosz/schemify"
)

// Ensure Scraper implements schemify.Scraper at compile time.
var _ schemify.Scraper = (*Scraper)(nil)

// Scraper selects an acquisition strategy per schema type, fetches the
// page, and runs the extraction cascades over it. Article and
// breadcrumb scrapes use the static fetcher; FAQ scrapes go through the
// rendering-capable one so tabbed and lazy-loaded panels are visible.
type Scraper struct {
	static    schemify.Fetcher
	dynamic   schemify.Fetcher
	extractor schemify.Extractor
	metrics   schemify.Metrics
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithMetrics records scrape outcomes to the given Metrics.
func WithMetrics(m schemify.Metrics) Option {
	return func(s *Scraper) {
		s.metrics = m
	}
}

// NewScraper creates a Scraper from its collaborators.
func NewScraper(static, dynamic schemify.Fetcher, extractor schemify.Extractor, opts ...Option) *Scraper {
	s := &Scraper{
		static:    static,
		dynamic:   dynamic,
		extractor: extractor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape acquires the page and returns one extracted record. The only
// fatal failure is acquisition (EFETCH); extractors finding nothing
// yields absent fields, not errors. There are no retries.
func (s *Scraper) Scrape(ctx context.Context, url string, typ schemify.SchemaType) (data *schemify.ExtractedData, err error) {
	if s.metrics != nil {
		defer func(begin time.Time) {
			outcome := "ok"
			if err != nil {
				outcome = schemify.ErrorCode(err)
			}
			s.metrics.ObserveScrape(typ, outcome, time.Since(begin).Seconds())
		}(time.Now())
	}

	if _, err := schemify.ParseSchemaType(string(typ)); err != nil {
		return nil, err
	}

	fetcher := s.static
	if typ == schemify.SchemaFAQ {
		fetcher = s.dynamic
	}

	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return s.extractor.Extract(html, url)
}
