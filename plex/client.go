package plex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	clientProduct    = "plexcsv"
	clientIdentifier = "plexcsv-export"
)

// Client represents a Plex Media Server API client
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger

	pageSize   int
	pageDelay  time.Duration
	retryDelay time.Duration
	version    string
}

// NewClient creates a new Plex client
func NewClient(baseURL, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: server URL is required", ErrInvalidConfig)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidConfig)
	}

	// Ensure baseURL doesn't have a trailing slash
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	client := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:     logger,
		pageSize:   DefaultPageSize,
		pageDelay:  DefaultPageDelay,
		retryDelay: DefaultRetryDelay,
		version:    "dev",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// get performs an authenticated GET request and returns the raw body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("X-Plex-Product", clientProduct)
	req.Header.Set("X-Plex-Version", c.version)
	req.Header.Set("X-Plex-Client-Identifier", clientIdentifier)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// TestConnection verifies the server is reachable and the token valid.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.get(ctx, "/identity", nil); err != nil {
		return fmt.Errorf("failed to connect to Plex: %w", err)
	}
	return nil
}

// Libraries retrieves the library section listing. Section lists are
// small; this endpoint is not paginated.
func (c *Client) Libraries(ctx context.Context) ([]Library, error) {
	body, err := c.get(ctx, "/library/sections", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get library sections: %w", err)
	}

	var sections sectionList
	if err := unmarshalXML(body, &sections); err != nil {
		return nil, fmt.Errorf("failed to parse section listing: %w", err)
	}

	c.logger.Debug().Int("count", len(sections.Directories)).Msg("Retrieved library sections")
	return sections.Directories, nil
}

// Library looks up one section by its key.
func (c *Client) Library(ctx context.Context, key string) (Library, error) {
	libs, err := c.Libraries(ctx)
	if err != nil {
		return Library{}, err
	}
	for _, lib := range libs {
		if lib.Key == key {
			return lib, nil
		}
	}
	return Library{}, fmt.Errorf("%w: %s", ErrLibraryNotFound, key)
}
