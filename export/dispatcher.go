package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"plexcsv/plex"
)

// Dispatcher resolves a library's kind and routes to the matching
// exporter, enforcing the file-overwrite policy on the way.
type Dispatcher struct {
	client   *plex.Client
	exporter *Exporter
	logger   zerolog.Logger
	force    bool
}

// NewDispatcher creates a Dispatcher. When force is set, existing
// output files are overwritten instead of failing.
func NewDispatcher(client *plex.Client, exporter *Exporter, logger zerolog.Logger, force bool) *Dispatcher {
	return &Dispatcher{
		client:   client,
		exporter: exporter,
		logger:   logger,
		force:    force,
	}
}

// ExportLibrary exports the library identified by key to outputPath.
func (d *Dispatcher) ExportLibrary(ctx context.Context, key, outputPath string) (*Result, error) {
	lib, err := d.client.Library(ctx, key)
	if err != nil {
		return nil, err
	}
	return d.export(ctx, lib, outputPath)
}

// ExportAll exports every supported library into dir, one file per
// library. A single library's failure is logged and does not stop the
// batch; the first error is returned alongside the completed results.
func (d *Dispatcher) ExportAll(ctx context.Context, dir string) ([]*Result, error) {
	libs, err := d.client.Libraries(ctx)
	if err != nil {
		return nil, err
	}

	var results []*Result
	var firstErr error
	for _, lib := range libs {
		if !lib.Supported() {
			d.logger.Warn().
				Str("library", lib.Title).
				Str("kind", lib.Type).
				Msg("Skipping library of unsupported kind")
			continue
		}

		outputPath := filepath.Join(dir, fileName(lib.Title))
		result, err := d.export(ctx, lib, outputPath)
		if err != nil {
			d.logger.Error().
				Err(err).
				Str("library", lib.Title).
				Msg("Library export failed, continuing with next library")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, result)
	}

	return results, firstErr
}

func (d *Dispatcher) export(ctx context.Context, lib plex.Library, outputPath string) (*Result, error) {
	if !lib.Supported() {
		return nil, fmt.Errorf("%w: %s (library %q)", ErrUnsupportedLibrary, lib.Type, lib.Title)
	}

	if _, err := os.Stat(outputPath); err == nil && !d.force {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, outputPath)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var result *Result
	var err error
	switch lib.Type {
	case plex.KindMovie:
		result, err = d.exporter.ExportMovies(ctx, lib, outputPath)
	case plex.KindShow:
		result, err = d.exporter.ExportShows(ctx, lib, outputPath)
	case plex.KindArtist:
		result, err = d.exporter.ExportAlbums(ctx, lib, outputPath)
	}
	if err != nil {
		return nil, err
	}

	// A header-only export is worth a warning but is not a failure.
	switch result.Status {
	case StatusNoData:
		d.logger.Warn().
			Str("library", lib.Title).
			Str("path", outputPath).
			Msg("Export produced no data rows")
	case StatusPartial:
		d.logger.Warn().
			Str("library", lib.Title).
			Int("exported", result.Exported).
			Int("expected", result.Expected).
			Msg("Export is missing records")
	}

	return result, nil
}

// fileName derives a CSV file name from a library title.
func fileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, title)
	name = strings.TrimSpace(name)
	if name == "" {
		name = "library"
	}
	return name + ".csv"
}
