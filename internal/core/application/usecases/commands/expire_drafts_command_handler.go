package commands

import (
	"context"
	"time"
)

// ExpireDraftsCommandHandler sweeps drafts that outlived the retention
// window, transitioning them to Expired in one transaction.
type ExpireDraftsCommandHandler struct {
	uowFactory PreBatchUoWFactory
}

// NewExpireDraftsCommandHandler creates a handler for the draft sweeper.
func NewExpireDraftsCommandHandler(uowFactory PreBatchUoWFactory) ExpireDraftsCommandHandler {
	return ExpireDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires stale drafts and returns how many were swept.
func (h *ExpireDraftsCommandHandler) Handle(ctx context.Context, cmd ExpireDraftsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PreBatchRepository()
	cutoff := time.Now().UTC().Add(-cmd.Retention())
	drafts, err := repo.GetAllDraftsOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, draft := range drafts {
		if err = draft.Expire(); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, draft); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(drafts), nil
}
