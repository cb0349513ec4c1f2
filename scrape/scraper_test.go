package scrape_test

import (
	"context"
	"testing"

	"github.com/jwielgosz/schemify"
	"github.com/jwielgosz/schemify/mock"
	"github.com/jwielgosz/schemify/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("routes article and breadcrumb scrapes to the static fetcher", func(t *testing.T) {
		t.Parallel()

		var staticCalls, dynamicCalls int
		static := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			staticCalls++
			return "<html></html>", nil
		}}
		dynamic := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			dynamicCalls++
			return "<html></html>", nil
		}}
		extractor := &mock.Extractor{ExtractFn: func(html, pageURL string) (*schemify.ExtractedData, error) {
			return &schemify.ExtractedData{}, nil
		}}

		s := scrape.NewScraper(static, dynamic, extractor)

		_, err := s.Scrape(context.Background(), "https://example.com/a", schemify.SchemaArticle)
		require.NoError(t, err)
		_, err = s.Scrape(context.Background(), "https://example.com/a", schemify.SchemaBreadcrumbs)
		require.NoError(t, err)

		assert.Equal(t, 2, staticCalls)
		assert.Equal(t, 0, dynamicCalls)
	})

	t.Run("routes FAQ scrapes to the rendering fetcher", func(t *testing.T) {
		t.Parallel()

		var dynamicCalls int
		static := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			t.Fatal("static fetcher must not be used for FAQ scrapes")
			return "", nil
		}}
		dynamic := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			dynamicCalls++
			return "<html></html>", nil
		}}
		extractor := &mock.Extractor{ExtractFn: func(html, pageURL string) (*schemify.ExtractedData, error) {
			return &schemify.ExtractedData{}, nil
		}}

		s := scrape.NewScraper(static, dynamic, extractor)

		_, err := s.Scrape(context.Background(), "https://example.com/faq", schemify.SchemaFAQ)
		require.NoError(t, err)
		assert.Equal(t, 1, dynamicCalls)
	})

	t.Run("propagates fetch failures without retrying", func(t *testing.T) {
		t.Parallel()

		var calls int
		static := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			calls++
			return "", schemify.Errorf(schemify.EFETCH, "connection refused")
		}}
		extractor := &mock.Extractor{ExtractFn: func(html, pageURL string) (*schemify.ExtractedData, error) {
			t.Fatal("extractor must not run when acquisition fails")
			return nil, nil
		}}

		s := scrape.NewScraper(static, static, extractor)

		_, err := s.Scrape(context.Background(), "https://down.example.com/", schemify.SchemaArticle)
		assert.Equal(t, schemify.EFETCH, schemify.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("rejects unknown schema types before fetching", func(t *testing.T) {
		t.Parallel()

		static := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			t.Fatal("fetcher must not run for invalid types")
			return "", nil
		}}
		extractor := &mock.Extractor{ExtractFn: func(html, pageURL string) (*schemify.ExtractedData, error) {
			return &schemify.ExtractedData{}, nil
		}}

		s := scrape.NewScraper(static, static, extractor)

		_, err := s.Scrape(context.Background(), "https://example.com/", schemify.SchemaType("recipe"))
		assert.Equal(t, schemify.EINVALID, schemify.ErrorCode(err))
	})

	t.Run("hands the page URL to the extractor", func(t *testing.T) {
		t.Parallel()

		static := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html><title>ok</title></html>", nil
		}}
		var gotURL string
		extractor := &mock.Extractor{ExtractFn: func(html, pageURL string) (*schemify.ExtractedData, error) {
			gotURL = pageURL
			return &schemify.ExtractedData{}, nil
		}}

		s := scrape.NewScraper(static, static, extractor)

		_, err := s.Scrape(context.Background(), "https://example.com/post", schemify.SchemaArticle)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/post", gotURL)
	})

	t.Run("records outcomes to metrics", func(t *testing.T) {
		t.Parallel()

		static := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", schemify.Errorf(schemify.EFETCH, "timeout")
		}}
		extractor := &mock.Extractor{ExtractFn: func(html, pageURL string) (*schemify.ExtractedData, error) {
			return &schemify.ExtractedData{}, nil
		}}

		var gotType schemify.SchemaType
		var gotOutcome string
		metrics := &mock.Metrics{ObserveScrapeFn: func(typ schemify.SchemaType, outcome string, seconds float64) {
			gotType = typ
			gotOutcome = outcome
		}}

		s := scrape.NewScraper(static, static, extractor, scrape.WithMetrics(metrics))

		_, _ = s.Scrape(context.Background(), "https://example.com/", schemify.SchemaArticle)
		assert.Equal(t, schemify.SchemaArticle, gotType)
		assert.Equal(t, schemify.EFETCH, gotOutcome)
	})
}
