package plex

import (
	"net/http"
	"time"
)

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithPageDelay sets the delay inserted between successive page
// requests. The default bounds the request rate against the server.
func WithPageDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.pageDelay = delay
	}
}

// WithRetryDelay sets the fixed delay between retry attempts for a
// failed page request.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// WithVersion sets the version reported in client identification headers
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}
