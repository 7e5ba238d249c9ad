package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Default client settings. These mirror the config package defaults; the
// constructor applies them when options leave fields unset.
const (
	defaultTimeout     = 30 * time.Second
	defaultMaxBodySize = 5 * 1024 * 1024 // 5MB
	defaultUserAgent   = "orgscan/1.0 (+https://github.com/orgscan/orgscan)"
	defaultAcceptLang  = "en-US,en;q=0.5"
)

// Client is an HTTP client for fetching pages and JSON endpoints.
// Redirects are followed (net/http default, up to 10 hops). Every request
// carries the configured User-Agent; HTML requests additionally carry an
// Accept-Language header because the follower patterns match English page
// text.
type Client struct {
	// hc is the underlying HTTP client.
	hc *http.Client

	// userAgent is the User-Agent header to send.
	userAgent string

	// acceptLanguage is the Accept-Language header for HTML requests.
	acceptLanguage string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithAcceptLanguage sets the Accept-Language header for HTML requests.
func WithAcceptLanguage(al string) Option {
	return func(c *Client) {
		if al != "" {
			c.acceptLanguage = al
		}
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		hc:             &http.Client{Timeout: defaultTimeout},
		userAgent:      defaultUserAgent,
		acceptLanguage: defaultAcceptLang,
		maxBodySize:    defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Response is the outcome of a completed request. A Response is returned
// for any status code; only transport-level failures surface as errors.
type Response struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Header contains the response headers.
	Header http.Header

	// Body is the response body, truncated at the configured size limit.
	Body []byte
}

// Successful reports whether the response status indicates success,
// counting redirects that were not followed as success (status < 400).
func (r *Response) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}

// Get fetches an HTML page. The request carries the Accept-Language header
// so language-negotiating sites serve their English variant.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, url, map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": c.acceptLanguage,
	})
}

// GetJSON fetches a JSON endpoint. No Accept-Language header is sent; the
// JSON variants are language-independent.
func (c *Client) GetJSON(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, url, map[string]string{
		"Accept": "application/json",
	})
}

// do performs a GET request with the given extra headers and reads the
// body up to the size limit.
func (c *Client) do(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
