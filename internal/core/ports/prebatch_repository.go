package ports

import (
	"context"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
)

// PreBatchRepository defines the persistence contract for draft aggregates.
type PreBatchRepository interface {
	// Add persists a new draft to storage.
	Add(ctx context.Context, aggregate *prebatch.PreBatch) error

	// Update persists changes to an existing draft, including status
	// transitions.
	Update(ctx context.Context, aggregate *prebatch.PreBatch) error

	// Get retrieves a draft by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*prebatch.PreBatch, error)

	// GetAllDraftsOlderThan retrieves drafts still in the Draft status whose
	// last update precedes the cutoff. Used by the expiry sweeper.
	GetAllDraftsOlderThan(ctx context.Context, cutoff time.Time) ([]*prebatch.PreBatch, error)
}
