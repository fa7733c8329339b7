// Package api is the client layer for the appliance backend. Each exported
// method wraps one backend endpoint: it builds the request, runs it through
// the timeout-guarded executor, and translates application errors into
// user-facing notifications plus a safe default return value so that callers
// can always render. Transport failures (timeouts, connection errors) are the
// only errors returned to callers.
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	homearc "github.com/homearc/homearc"
	"github.com/homearc/homearc/internal/notify"
	"github.com/gregjones/httpcache"
)

const defaultUserAgent = "homearc-ui/0.1"

// Client handles communication with the appliance backend API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client

	// cachedClient serves reads whose payload rarely changes (e.g. the
	// downloader catalog) through an in-memory caching transport.
	cachedClient *http.Client

	notifier  notify.Notifier
	timeout   time.Duration
	userAgent string
}

type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient builds a Client for the backend at baseURL. Notifications raised
// while classifying responses are sent to the supplied notifier.
func NewClient(baseURL string, notifier notify.Notifier, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{},
		cachedClient: &http.Client{
			Transport: httpcache.NewMemoryCacheTransport(),
		},
		notifier:  notifier,
		timeout:   homearc.DefaultRequestTimeout,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("no backend base URL supplied")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
