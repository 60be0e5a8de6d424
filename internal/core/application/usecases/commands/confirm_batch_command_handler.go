package commands

import (
	"context"

	"batching/internal/core/domain/services"
)

// ConfirmBatchCommandHandler converts a draft into a finalized batch: it
// loads the session's PreBatch, transitions it to Converted, and inserts the
// Batch row in the same transaction. The session is never mutated here; the
// caller runs the workflow reset only after Handle succeeds, so a failed
// confirm leaves the session fully intact and the commit retryable.
type ConfirmBatchCommandHandler struct {
	uowFactory UoWFactory
	assembler  services.BatchAssembler
}

// NewConfirmBatchCommandHandler creates a handler for the commit operation.
func NewConfirmBatchCommandHandler(uowFactory UoWFactory) ConfirmBatchCommandHandler {
	return ConfirmBatchCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewBatchAssembler(),
	}
}

// Handle converts the session's draft and persists the batch.
func (h *ConfirmBatchCommandHandler) Handle(ctx context.Context, cmd ConfirmBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess := cmd.Session()

	newBatch, err := h.assembler.AssembleBatch(cmd.BatchID(), sess)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	preBatchRepo := uow.PreBatchRepository()
	draft, err := preBatchRepo.Get(ctx, sess.PreBatchID())
	if err != nil {
		return err
	}

	if err = draft.Convert(); err != nil {
		return err
	}

	if err = preBatchRepo.Update(ctx, draft); err != nil {
		return err
	}

	if err = uow.BatchRepository().Add(ctx, newBatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
