package ports

import (
	"context"

	"batching/internal/core/domain/model/batch"
	"batching/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for committed batches.
type BatchRepository interface {
	// Add persists a newly committed batch to storage.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
}
