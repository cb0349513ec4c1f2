// Package rod provides the rendering-capable side of page acquisition
// using Chrome browser automation. FAQ pages hide content behind tabs
// and lazy loading, so they are fetched through a real browser that
// scrolls, clicks, and waits before capturing the final HTML.
package rod

import (
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/jwielgosz/schemify"
)

// Session owns the process-wide shared browser. The browser is launched
// lazily on first use and reused across calls; a dead or disconnected
// handle is detected on acquisition and replaced with a fresh launch
// rather than reused. At most one browser is alive at a time.
//
// Session is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   atomic.Bool
}

// NewSession creates a Session. No browser is launched until the first
// call to Browser.
func NewSession() *Session {
	return &Session{}
}

// Browser returns a live browser instance, launching or relaunching as
// needed. Launch failures are reported with code EFETCH.
func (s *Session) Browser() (*rod.Browser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, schemify.Errorf(schemify.EFETCH, "rendering session is closed")
	}

	if s.browser != nil {
		if s.alive() {
			return s.browser, nil
		}
		// Dead handle: never reuse, discard and relaunch.
		s.discard()
	}

	if err := s.launch(); err != nil {
		return nil, schemify.Errorf(schemify.EFETCH, "launching browser: %v", err)
	}
	return s.browser, nil
}

// Close shuts down the browser. Close is safe to call multiple times
// and on a session that never launched.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	s.discard()
	return err
}

// alive probes the browser over the control connection.
// Must be called with mu held.
func (s *Session) alive() bool {
	_, err := s.browser.Version()
	return err == nil
}

// launch starts a new headless browser with stability flags.
// Must be called with mu held.
func (s *Session) launch() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return err
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return err
	}

	s.browser = browser
	s.launcher = lnchr
	return nil
}

// discard drops the current browser and launcher handles, killing the
// launcher process if one exists. Must be called with mu held.
func (s *Session) discard() {
	s.browser = nil
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
}
