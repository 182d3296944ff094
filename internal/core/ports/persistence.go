package ports

import (
	"context"

	"github.com/campushire/career-registry/internal/core/domain"
)

// RecordReader decodes the six persisted batches. One malformed record must
// not abort the rest of its batch: whatever decoded cleanly is returned
// alongside the per-record errors, and the caller decides whether partial
// data is acceptable. The error return is reserved for failures that make
// the whole source unusable.
type RecordReader interface {
	Read(ctx context.Context) (RecordBatches, []domain.DecodeError, error)
}

// RecordWriter persists the six batches as a unit: either every batch is
// replaced or none is.
type RecordWriter interface {
	Write(ctx context.Context, batches RecordBatches) error
}
