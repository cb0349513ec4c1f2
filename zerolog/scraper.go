// Package zerolog provides logging decorators for the domain
// interfaces.
package zerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwielgosz/schemify"
)

// Ensure LoggingScraper implements schemify.Scraper.
var _ schemify.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with per-call logging.
type LoggingScraper struct {
	next   schemify.Scraper
	logger zerolog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next schemify.Scraper, logger zerolog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the URL, schema type, duration, and outcome, and
// delegates to the wrapped scraper.
func (s *LoggingScraper) Scrape(ctx context.Context, url string, typ schemify.SchemaType) (data *schemify.ExtractedData, err error) {
	defer func(begin time.Time) {
		evt := s.logger.Info()
		if err != nil {
			evt = s.logger.Error().Str("code", schemify.ErrorCode(err)).Err(err)
		}
		evt.
			Str("url", url).
			Str("type", string(typ)).
			Dur("duration", time.Since(begin)).
			Msg("scrape")
	}(time.Now())
	return s.next.Scrape(ctx, url, typ)
}
