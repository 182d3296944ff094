package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/campushire/career-registry/internal/core/ports"
)

// Writer persists the six batches as an all-or-nothing set: every file is
// first staged as a temp file next to its target, and targets are replaced
// only after the whole set staged cleanly. A failure before the rename phase
// leaves the previous state untouched.
type Writer struct {
	paths Paths
	log   zerolog.Logger
}

func NewWriter(paths Paths, log zerolog.Logger) *Writer {
	return &Writer{paths: paths, log: log}
}

func (w *Writer) Write(ctx context.Context, batches ports.RecordBatches) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries := []struct {
		path string
		recs any
	}{
		{w.paths.Admins, emptyIfNil(batches.Admins)},
		{w.paths.Students, emptyIfNil(batches.Students)},
		{w.paths.Employers, emptyIfNil(batches.Employers)},
		{w.paths.Professors, emptyIfNil(batches.Professors)},
		{w.paths.Reviews, emptyIfNil(batches.Reviews)},
		{w.paths.Postings, emptyIfNil(batches.Postings)},
	}

	staged := make([]string, 0, len(entries))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, e := range entries {
		data, err := json.MarshalIndent(e.recs, "", "  ")
		if err != nil {
			cleanup()
			return fmt.Errorf("write record set: encode %s: %w", e.path, err)
		}
		if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
			cleanup()
			return fmt.Errorf("write record set: %w", err)
		}
		tmp := e.path + ".staged"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("write record set: stage %s: %w", e.path, err)
		}
		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if err := os.Rename(tmp, entries[i].path); err != nil {
			cleanup()
			return fmt.Errorf("write record set: replace %s: %w", entries[i].path, err)
		}
	}

	w.log.Info().Int("files", len(entries)).Msg("record set written")
	return nil
}

// emptyIfNil keeps an absent batch rendering as [] rather than null.
func emptyIfNil[T any](recs []T) []T {
	if recs == nil {
		return []T{}
	}
	return recs
}
