package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/jwielgosz/schemify"
)

// DefaultNavTimeout caps navigation plus network quiet-down.
const DefaultNavTimeout = 60 * time.Second

// DefaultRevealTimeout caps the non-fatal wait for a FAQ section to
// appear after clicking a FAQ tab.
const DefaultRevealTimeout = 8 * time.Second

// scrollScript scrolls to the bottom in 500 px steps every 200 ms so
// lazy-loaded content below the fold gets a chance to render.
const scrollScript = `async () => {
	await new Promise((resolve) => {
		const step = () => {
			window.scrollBy(0, 500);
			if (window.scrollY + window.innerHeight >= document.body.scrollHeight) {
				resolve();
				return;
			}
			setTimeout(step, 200);
		};
		setTimeout(step, 200);
	});
}`

// clickFAQScript scans interactive elements for FAQ-looking labels and
// clicks the first match to reveal hidden FAQ panels.
const clickFAQScript = `() => {
	const needles = ['frequently asked questions', 'faqs', 'faq'];
	const candidates = document.querySelectorAll(
		'a, button, [role="tab"], [role="menuitem"], [role="button"]'
	);
	for (const el of candidates) {
		const text = (el.textContent || '').trim().toLowerCase();
		if (needles.some((n) => text.includes(n))) {
			el.click();
			return true;
		}
	}
	return false;
}`

// faqRevealSelector matches markup that indicates a FAQ section has
// become visible.
const faqRevealSelector = `[itemtype*="FAQPage"], .faq, #faq, .faqs, .faq-section, .faq-item, .faq-question`

// Ensure Fetcher implements schemify.Fetcher at compile time.
var _ schemify.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves fully rendered HTML through the shared browser
// session. Each Fetch opens its own page and closes it before
// returning; pages are never shared across calls.
type Fetcher struct {
	session       *Session
	navTimeout    time.Duration
	revealTimeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavTimeout overrides the navigation timeout.
func WithNavTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.navTimeout = d
	}
}

// WithRevealTimeout overrides the FAQ reveal wait.
func WithRevealTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.revealTimeout = d
	}
}

// NewFetcher creates a Fetcher on top of a shared Session.
func NewFetcher(session *Session, opts ...Option) *Fetcher {
	f := &Fetcher{
		session:       session,
		navTimeout:    DefaultNavTimeout,
		revealTimeout: DefaultRevealTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL, waits for the network to go quiet, runs
// the scroll and FAQ-reveal interaction sequence, and returns the final
// HTML. Navigation failures and timeouts are fatal (EFETCH); the
// interaction steps are best-effort.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	browser, err := f.session.Browser()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", schemify.Errorf(schemify.EFETCH, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	// Navigation and network quiet-down share one deadline.
	navCtx, cancel := context.WithTimeout(ctx, f.navTimeout)
	defer cancel()
	nav := page.Context(navCtx)

	if err := nav.Navigate(url); err != nil {
		return "", schemify.Errorf(schemify.EFETCH, "navigating to %s: %v", url, err)
	}
	if err := nav.WaitLoad(); err != nil {
		return "", schemify.Errorf(schemify.EFETCH, "loading %s: %v", url, err)
	}
	wait := nav.WaitRequestIdle(500*time.Millisecond, nil, nil, nil)
	wait()
	if navCtx.Err() != nil {
		return "", schemify.Errorf(schemify.EFETCH, "navigation to %s timed out", url)
	}

	// Best effort: pages that block script evaluation still get their
	// static HTML captured.
	_, _ = page.Eval(scrollScript)

	_, _ = page.Eval(clickFAQScript)

	// Give a revealed FAQ panel a bounded chance to render. Expiry is
	// non-fatal; pages without FAQ markup just pay the wait.
	_, _ = page.Timeout(f.revealTimeout).Element(faqRevealSelector)

	html, err := page.HTML()
	if err != nil {
		return "", schemify.Errorf(schemify.EFETCH, "capturing HTML of %s: %v", url, err)
	}
	return html, nil
}

// Close is a no-op; the shared Session owns the browser lifecycle.
func (f *Fetcher) Close() error {
	return nil
}
