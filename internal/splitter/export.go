package splitter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/geosplit/internal/geo"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

// ErrWrite is returned when an output file cannot be created or written.
var ErrWrite = errors.New("write group")

var emptyCRS = json.RawMessage(`{}`)

// ExportOptions controls where and how group files are written.
type ExportOptions struct {
	OutputDir string
	Extension string // appended to the file base name, including the dot

	// KeepGoing continues with the remaining groups after a write failure
	// and returns all failures together.
	KeepGoing bool
}

// Export writes one feature collection file per group, in group order,
// and returns the written paths. Files written before a failure are kept.
func Export(groups []Group, crs json.RawMessage, opts ExportOptions) ([]string, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	if len(crs) == 0 {
		crs = emptyCRS
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWrite, opts.OutputDir, err)
	}

	names := newNamer()
	written := make([]string, 0, len(groups))
	var errs []error

	for _, g := range groups {
		filename := names.next(g.Key) + opts.Extension
		path := filepath.Join(opts.OutputDir, filename)

		if filename != g.Key+opts.Extension {
			log.Warn().
				Str("key", g.Key).
				Str("file", filename).
				Msg("Group key is not a safe file name, sanitized")
		}

		if err := writeGroup(path, g, crs); err != nil {
			err = fmt.Errorf("%w %q: %s: %w", ErrWrite, g.Key, path, err)
			if !opts.KeepGoing {
				return written, err
			}

			log.Error().Err(err).Str("key", g.Key).Msg("Failed to write group")
			errs = append(errs, err)
			continue
		}

		log.Info().
			Str("key", g.Key).
			Int("features", len(g.Features)).
			Msgf("Saved: %s", filename)

		written = append(written, path)
	}

	return written, errors.Join(errs...)
}

// writeGroup encodes the group and replaces path with it atomically.
func writeGroup(path string, g Group, crs json.RawMessage) error {
	data, err := geo.Encode(&geo.FeatureCollection{
		Type:     geo.TypeFeatureCollection,
		Name:     g.Key,
		CRS:      crs,
		Features: g.Features,
	})
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}

	// temp files are created 0600
	return os.Chmod(path, 0644)
}
