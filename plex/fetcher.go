package plex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	// DefaultPageSize is the fixed container size for page requests.
	DefaultPageSize = 50
	// DefaultPageDelay bounds the request rate between successive pages.
	DefaultPageDelay = 500 * time.Millisecond
	// DefaultRetryDelay is the fixed wait between attempts for one page.
	DefaultRetryDelay = 5 * time.Second
	// pageAttempts is the total number of tries per page before the
	// whole fetch is abandoned.
	pageAttempts = 3
)

const (
	containerStartParam = "X-Plex-Container-Start"
	containerSizeParam  = "X-Plex-Container-Size"
)

var (
	containerOpen  = []byte("<MediaContainer")
	containerClose = []byte("</MediaContainer>")
)

// FetchAll retrieves every item of a collection endpoint and returns
// one logical XML document: the concatenation of all pages' record
// elements wrapped in a single MediaContainer.
//
// The collection's size is discovered with a zero-size probe request,
// then pages of DefaultPageSize items are requested strictly
// sequentially. Each page gets pageAttempts tries with a fixed delay in
// between; once a page exhausts its retries the fetch fails as a whole
// and pages already retrieved are discarded.
//
// When progress is non-nil, one line per page is written to it. The
// indicator is purely observational and never affects the document.
func (c *Client) FetchAll(ctx context.Context, endpoint string, params url.Values, progress io.Writer) ([]byte, error) {
	totalSize, err := c.probeSize(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSizeUnavailable, err)
	}

	pageCount := (totalSize + c.pageSize - 1) / c.pageSize
	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("total_size", totalSize).
		Int("pages", pageCount).
		Msg("Fetching collection")

	var doc bytes.Buffer
	doc.WriteString("<MediaContainer totalSize=\"" + strconv.Itoa(totalSize) + "\">")

	page := 0
	for start := 0; start < totalSize; start += c.pageSize {
		if page > 0 {
			// Rate limit between successive page requests.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pageDelay):
			}
		}
		page++

		body, err := c.fetchPage(ctx, endpoint, params, start)
		if err != nil {
			return nil, &PageError{Offset: start, Err: err}
		}

		doc.Write(innerContent(body))

		if progress != nil {
			fmt.Fprintf(progress, "fetched page %d/%d (offset %d)\n", page, pageCount, start)
		}
	}

	doc.Write(containerClose)
	return doc.Bytes(), nil
}

// probeSize issues a zero-size page request and reads the collection's
// declared total element count off the response envelope.
func (c *Client) probeSize(ctx context.Context, endpoint string, params url.Values) (int, error) {
	probeParams := cloneValues(params)
	probeParams.Set(containerStartParam, "0")
	probeParams.Set(containerSizeParam, "0")

	body, err := c.get(ctx, endpoint, probeParams)
	if err != nil {
		return 0, err
	}

	var probe sizeProbe
	if err := unmarshalXML(body, &probe); err != nil {
		return 0, fmt.Errorf("failed to parse size probe response: %w", err)
	}

	return probe.TotalSize, nil
}

// fetchPage requests one page with bounded, fixed-delay retries.
func (c *Client) fetchPage(ctx context.Context, endpoint string, params url.Values, start int) ([]byte, error) {
	pageParams := cloneValues(params)
	pageParams.Set(containerStartParam, strconv.Itoa(start))
	pageParams.Set(containerSizeParam, strconv.Itoa(c.pageSize))

	return retry.DoWithData(
		func() ([]byte, error) {
			return c.get(ctx, endpoint, pageParams)
		},
		retry.Context(ctx),
		retry.Attempts(pageAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn().
				Err(err).
				Int("offset", start).
				Uint("attempt", n+1).
				Msg("Page request failed, retrying")
		}),
	)
}

// innerContent strips a page's outer MediaContainer tags, leaving only
// the record elements. The reassembled document must contain exactly
// one container, never nested copies.
func innerContent(page []byte) []byte {
	open := bytes.Index(page, containerOpen)
	if open == -1 {
		return nil
	}
	end := bytes.IndexByte(page[open:], '>')
	if end == -1 {
		return nil
	}
	end += open
	if page[end-1] == '/' {
		// Self-closing container: an empty page.
		return nil
	}
	stop := bytes.LastIndex(page, containerClose)
	if stop == -1 || stop < end {
		return nil
	}
	return page[end+1 : stop]
}

func cloneValues(params url.Values) url.Values {
	out := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	return out
}
