//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jwielgosz/schemify"
	"github.com/jwielgosz/schemify/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements schemify.Fetcher.
var _ schemify.Fetcher = (*rod.Fetcher)(nil)

// faqTabPage hides its FAQ panel until the FAQ tab is clicked.
const faqTabPage = `<!DOCTYPE html>
<html><head><title>Tabbed Page</title></head>
<body>
<button role="tab" onclick="document.getElementById('panel').style.display='block'">FAQ</button>
<div id="panel" class="faq" style="display:none">
  <h3>Is the panel revealed?</h3>
  <p>Yes, by the tab click.</p>
</div>
</body></html>`

func TestFetcher_Fetch_RevealsFAQTab(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(faqTabPage))
	}))
	defer srv.Close()

	session := rod.NewSession()
	defer session.Close()

	fetcher := rod.NewFetcher(session, rod.WithRevealTimeout(2*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "Is the panel revealed?")
	assert.Contains(t, html, "display: block")
}

func TestFetcher_Fetch_NavigationTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {} // never respond
	}))
	defer srv.Close()

	session := rod.NewSession()
	defer session.Close()

	fetcher := rod.NewFetcher(session, rod.WithNavTimeout(2*time.Second))

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, schemify.EFETCH, schemify.ErrorCode(err))
}

func TestFetcher_Fetch_SessionReusedAcrossCalls(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="faq"><h3>Q</h3><p>A</p></div></body></html>`))
	}))
	defer srv.Close()

	session := rod.NewSession()
	defer session.Close()

	fetcher := rod.NewFetcher(session, rod.WithRevealTimeout(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for i := 0; i < 2; i++ {
		html, err := fetcher.Fetch(ctx, srv.URL)
		require.NoError(t, err)
		assert.Contains(t, html, "faq")
	}
}
