package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered pages after which the browser
// is replaced.
const DefaultMaxPages = 75

// BrowserManager owns a headless browser and replaces it after a fixed
// number of pages, since Chrome's memory use grows over a long sync and
// does not shrink when pages close.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages rendered before recycling.
func WithMaxPages(n int) ManagerOption {
	return func(m *BrowserManager) {
		m.maxPages = n
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	m := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(m)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	m.browser, m.launcher = browser, l

	return m, nil
}

// Browser returns the current browser, replacing it first if the page
// budget is spent. A failed replacement keeps the old browser.
func (m *BrowserManager) Browser() *rod.Browser {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pages < m.maxPages || m.closed {
		return m.browser
	}

	browser, l, err := launch()
	if err != nil {
		return m.browser
	}
	_ = m.browser.Close()
	m.launcher.Kill()
	m.browser, m.launcher, m.pages = browser, l, 0

	return m.browser
}

// IncrementPageCount records one rendered page against the budget.
func (m *BrowserManager) IncrementPageCount() {
	m.mu.Lock()
	m.pages++
	m.mu.Unlock()
}

// Close shuts down the browser and its launcher process.
// Close is safe to call multiple times.
func (m *BrowserManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	err := m.browser.Close()
	m.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (m *BrowserManager) LauncherPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.launcher.PID()
}

func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return browser, l, nil
}
