// Package plex provides a client for the Plex Media Server HTTP API.
//
// The package covers the read-only surface this tool needs: the library
// section listing and paginated retrieval of a section's items. Item
// endpoints are stateful remote collections; FetchAll drives them with
// fixed-size container pages, bounded retries and a rate-limiting delay,
// and reassembles the pages into one logical XML document.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := plex.NewClient("http://localhost:32400", token, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	libs, err := client.Libraries(ctx)
//
//	params := url.Values{"type": {plex.TypeMovie}}
//	doc, err := client.FetchAll(ctx, "/library/sections/1/all", params, os.Stderr)
//
// # Error Handling
//
//   - ErrSizeUnavailable: the collection size probe failed
//   - *PageError: one page exhausted its retries; carries the offset
//   - APIError: non-200 responses with status code classification
package plex
