package prebatchrepo

import (
	"context"
	"errors"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
	"batching/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPreBatchRepository implements PreBatchRepository using GORM.
type GormPreBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPreBatchRepository creates a new GORM draft repository.
func NewGormPreBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormPreBatchRepository {
	return &GormPreBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new draft to the database.
func (r *GormPreBatchRepository) Add(ctx context.Context, aggregate *prebatch.PreBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing draft to the database.
func (r *GormPreBatchRepository) Update(ctx context.Context, aggregate *prebatch.PreBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a draft by ID.
func (r *GormPreBatchRepository) Get(ctx context.Context, id kernel.UUID) (*prebatch.PreBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PreBatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pre-batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDraftsOlderThan retrieves drafts still in the Draft status that were
// last touched before the cutoff. The expiry sweep uses it to find drafts
// that outlived the retention window.
func (r *GormPreBatchRepository) GetAllDraftsOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*prebatch.PreBatch, error) {
	var dtos []PreBatchDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", int(prebatch.StatusDraft), cutoff).
		Order("updated_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	drafts := make([]*prebatch.PreBatch, 0, len(dtos))
	for _, dto := range dtos {
		draft, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}
