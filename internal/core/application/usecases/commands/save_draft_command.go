package commands

import (
	"errors"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/session"
	"batching/internal/pkg/guard"
)

var (
	ErrSaveDraftCommandIsNotConstructed = errors.New(
		"SaveDraftCommand must be created via NewSaveDraftCommand constructor",
	)
	ErrSessionIsRequired = errors.New("session is required")
)

// SaveDraftCommand represents a request to persist the session's current
// state as a resumable draft. The draft identity is chosen by the caller up
// front; when the session already holds a persisted draft the same identity
// is reused and the draft is updated in place.
type SaveDraftCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID
	sess    *session.WorkflowSession

	guard guard.ConstructorGuard
}

// NewSaveDraftCommand creates a command to save the session as a draft.
func NewSaveDraftCommand(draftID kernel.UUID, sess *session.WorkflowSession) (SaveDraftCommand, error) {
	command := SaveDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDraftID(draftID),
		command.setSession(sess),
	); err != nil {
		return SaveDraftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveDraftCommand) Validate() error {
	return c.guard.Validate(ErrSaveDraftCommandIsNotConstructed)
}

// DraftID returns the identity the draft is persisted under when the
// session has no draft yet.
func (c SaveDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

// Session returns the session whose state is saved.
func (c SaveDraftCommand) Session() *session.WorkflowSession {
	return c.sess
}

func (c *SaveDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}

func (c *SaveDraftCommand) setSession(sess *session.WorkflowSession) error {
	if sess == nil {
		return ErrSessionIsRequired
	}
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}
