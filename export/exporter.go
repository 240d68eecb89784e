package export

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/rs/zerolog"

	"plexcsv/plex"
)

// variant describes one library kind's export schema: the CSV header,
// the item type discriminator sent to the server, the record-bearing
// element name, and how to turn one element into a row.
type variant struct {
	header   []string
	itemType string
	element  string
	row      func(el *plex.Element) []string
	env      func(el *plex.Element) map[string]any
}

// Exporter writes one library's records to a CSV file.
type Exporter struct {
	client   *plex.Client
	logger   zerolog.Logger
	filter   *Filter
	progress io.Writer
}

// ExporterOption configures an Exporter
type ExporterOption func(*Exporter)

// WithFilter applies a compiled record filter; records that do not
// match are not written.
func WithFilter(f *Filter) ExporterOption {
	return func(e *Exporter) {
		e.filter = f
	}
}

// WithProgress sets the stream page-fetch progress lines are written
// to. Nil (the default) suppresses them.
func WithProgress(w io.Writer) ExporterOption {
	return func(e *Exporter) {
		e.progress = w
	}
}

// NewExporter creates an Exporter
func NewExporter(client *plex.Client, logger zerolog.Logger, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		client: client,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportMovies exports a movie library to outputPath.
func (e *Exporter) ExportMovies(ctx context.Context, lib plex.Library, outputPath string) (*Result, error) {
	return e.run(ctx, lib, outputPath, movieVariant)
}

// ExportShows exports a TV library to outputPath.
func (e *Exporter) ExportShows(ctx context.Context, lib plex.Library, outputPath string) (*Result, error) {
	return e.run(ctx, lib, outputPath, showVariant)
}

// ExportAlbums exports a music library's albums to outputPath.
func (e *Exporter) ExportAlbums(ctx context.Context, lib plex.Library, outputPath string) (*Result, error) {
	return e.run(ctx, lib, outputPath, albumVariant)
}

func (e *Exporter) run(ctx context.Context, lib plex.Library, outputPath string, v variant) (*Result, error) {
	w, err := newRowWriter(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer w.Close()

	if err := w.writeRow(v.header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	endpoint := fmt.Sprintf("/library/sections/%s/all", lib.Key)
	params := url.Values{"type": {v.itemType}}

	doc, err := e.client.FetchAll(ctx, endpoint, params, e.progress)
	if err != nil {
		return nil, err
	}

	root, err := plex.ParseDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse collection document: %w", err)
	}

	elements := root.ChildrenNamed(v.element)
	result := &Result{Path: outputPath}

	for _, el := range elements {
		if el.Attr("title") == "" {
			// No usable primary title; drop the record but keep count.
			result.Skipped++
			e.logger.Warn().
				Str("library", lib.Title).
				Str("key", el.Attr("ratingKey")).
				Msg("Skipping record without a title")
			continue
		}

		if e.filter != nil {
			match, err := e.filter.Match(v.env(el))
			if err != nil {
				return nil, fmt.Errorf("filter evaluation failed: %w", err)
			}
			if !match {
				result.Filtered++
				continue
			}
		}

		if err := w.writeRow(v.row(el)); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
		result.Exported++
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output file: %w", err)
	}

	result.Expected = len(elements) - result.Filtered
	result.Status = classify(result.Exported, result.Expected)

	e.logger.Info().
		Str("library", lib.Title).
		Str("path", outputPath).
		Int("exported", result.Exported).
		Int("skipped", result.Skipped).
		Int("filtered", result.Filtered).
		Stringer("status", result.Status).
		Msg("Export finished")

	return result, nil
}
