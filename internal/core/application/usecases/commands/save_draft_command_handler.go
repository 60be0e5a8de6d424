package commands

import (
	"context"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/services"
)

// SaveDraftCommandHandler persists a session snapshot as a PreBatch draft.
// A session with no draft yet gets a new row under the command's draft
// identity; a session that was saved before is updated in place. The session
// itself is never mutated here: the caller records the draft identity only
// after Handle returns successfully, so a failed save leaves the session
// untouched and retryable.
type SaveDraftCommandHandler struct {
	uowFactory PreBatchUoWFactory
	assembler  services.DraftAssembler
}

// NewSaveDraftCommandHandler creates a handler for draft persistence.
func NewSaveDraftCommandHandler(uowFactory PreBatchUoWFactory) SaveDraftCommandHandler {
	return SaveDraftCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewDraftAssembler(),
	}
}

// Handle saves the draft and returns the identity it was persisted under.
func (h *SaveDraftCommandHandler) Handle(ctx context.Context, cmd SaveDraftCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	sess := cmd.Session()

	draftID := cmd.DraftID()
	isResave := sess.PreBatchID().Validate() == nil
	if isResave {
		draftID = sess.PreBatchID()
	}

	draft, err := h.assembler.AssembleDraft(draftID, sess)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PreBatchRepository()
	if isResave {
		err = repo.Update(ctx, draft)
	} else {
		err = repo.Add(ctx, draft)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return draftID, nil
}
