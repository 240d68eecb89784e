package plex

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectionServer simulates a paginable Plex collection of n items and
// records every page request it serves.
type collectionServer struct {
	mu       sync.Mutex
	total    int
	offsets  []int
	failures map[int]int // offset -> remaining failures to inject
}

func (s *collectionServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := 0
		size := -1
		fmt.Sscanf(r.URL.Query().Get(containerStartParam), "%d", &start)
		fmt.Sscanf(r.URL.Query().Get(containerSizeParam), "%d", &size)
		require.GreaterOrEqual(t, size, 0, "page size param missing")

		if size == 0 {
			fmt.Fprintf(w, `<MediaContainer totalSize="%d" size="0"></MediaContainer>`, s.total)
			return
		}

		s.mu.Lock()
		if s.failures[start] > 0 {
			s.failures[start]--
			s.mu.Unlock()
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.offsets = append(s.offsets, start)
		s.mu.Unlock()

		var body bytes.Buffer
		fmt.Fprintf(&body, `<MediaContainer totalSize="%d" size="%d">`, s.total, size)
		for i := start; i < start+size && i < s.total; i++ {
			fmt.Fprintf(&body, `<Video title="Movie %d"/>`, i)
		}
		body.WriteString(`</MediaContainer>`)
		w.Write(body.Bytes())
	}
}

func newTestClient(t *testing.T, url string) *Client {
	client, err := NewClient(url, "tok", zerolog.Nop(),
		WithPageDelay(0),
		WithRetryDelay(time.Millisecond),
	)
	require.NoError(t, err)
	return client
}

func TestFetchAllPagination(t *testing.T) {
	src := &collectionServer{total: 120}
	server := httptest.NewServer(src.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	doc, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, nil)
	require.NoError(t, err)

	// ceil(120/50) pages at the expected offsets.
	assert.Equal(t, []int{0, 50, 100}, src.offsets)

	// Exactly one outer container, all items present, in order.
	assert.Equal(t, 1, strings.Count(string(doc), "<MediaContainer"))
	assert.Equal(t, 1, strings.Count(string(doc), "</MediaContainer>"))

	root, err := ParseDocument(doc)
	require.NoError(t, err)
	videos := root.ChildrenNamed("Video")
	require.Len(t, videos, 120)
	assert.Equal(t, "Movie 0", videos[0].Attr("title"))
	assert.Equal(t, "Movie 119", videos[119].Attr("title"))
}

func TestFetchAllSinglePage(t *testing.T) {
	src := &collectionServer{total: 7}
	server := httptest.NewServer(src.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	doc, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, src.offsets)
	assert.Equal(t, 1, strings.Count(string(doc), "<MediaContainer"))

	root, err := ParseDocument(doc)
	require.NoError(t, err)
	assert.Len(t, root.ChildrenNamed("Video"), 7)
}

func TestFetchAllEmptyCollection(t *testing.T) {
	src := &collectionServer{total: 0}
	server := httptest.NewServer(src.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	doc, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, nil)
	require.NoError(t, err)

	assert.Empty(t, src.offsets, "no page requests for an empty collection")

	root, err := ParseDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, root.ChildrenNamed("Video"))
}

func TestFetchAllRetrySucceeds(t *testing.T) {
	// Offset 50 fails twice, then succeeds on the third attempt. The
	// page must contribute exactly once to the document.
	src := &collectionServer{total: 120, failures: map[int]int{50: 2}}
	server := httptest.NewServer(src.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	doc, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, nil)
	require.NoError(t, err)

	root, err := ParseDocument(doc)
	require.NoError(t, err)
	videos := root.ChildrenNamed("Video")
	require.Len(t, videos, 120)
	assert.Equal(t, "Movie 50", videos[50].Attr("title"))
	assert.Equal(t, "Movie 99", videos[99].Attr("title"))
}

func TestFetchAllRetryExhausted(t *testing.T) {
	src := &collectionServer{total: 120, failures: map[int]int{50: 3}}
	server := httptest.NewServer(src.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, nil)
	require.Error(t, err)

	var pageErr *PageError
	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, 50, pageErr.Offset)
}

func TestFetchAllProbeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, nil)
	assert.ErrorIs(t, err, ErrSizeUnavailable)
}

func TestFetchAllProgress(t *testing.T) {
	src := &collectionServer{total: 120}
	server := httptest.NewServer(src.handler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	var progress bytes.Buffer
	_, err := client.FetchAll(context.Background(), "/library/sections/1/all", nil, &progress)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "page 1/3")
	assert.Contains(t, lines[2], "offset 100")
}

func TestInnerContent(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected string
	}{
		{
			name:     "regular page",
			page:     `<MediaContainer size="2"><Video a="1"/><Video a="2"/></MediaContainer>`,
			expected: `<Video a="1"/><Video a="2"/>`,
		},
		{
			name:     "self-closing empty page",
			page:     `<MediaContainer size="0"/>`,
			expected: "",
		},
		{
			name:     "with xml declaration",
			page:     `<?xml version="1.0"?><MediaContainer size="1"><Video/></MediaContainer>`,
			expected: `<Video/>`,
		},
		{
			name:     "no container",
			page:     `<Other/>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(innerContent([]byte(tt.page))))
		})
	}
}
