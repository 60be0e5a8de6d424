package commands

import (
	"errors"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/session"
	"batching/internal/pkg/guard"
)

var ErrConfirmBatchCommandIsNotConstructed = errors.New(
	"ConfirmBatchCommand must be created via NewConfirmBatchCommand constructor",
)

// ConfirmBatchCommand represents the terminal request converting a session's
// persisted draft plus all downstream choices into a finalized batch.
type ConfirmBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	sess    *session.WorkflowSession

	guard guard.ConstructorGuard
}

// NewConfirmBatchCommand creates a command to commit the session's batch.
func NewConfirmBatchCommand(batchID kernel.UUID, sess *session.WorkflowSession) (ConfirmBatchCommand, error) {
	command := ConfirmBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBatchID(batchID),
		command.setSession(sess),
	); err != nil {
		return ConfirmBatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmBatchCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBatchCommandIsNotConstructed)
}

// BatchID returns the identity of the batch to create.
func (c ConfirmBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Session returns the session being committed.
func (c ConfirmBatchCommand) Session() *session.WorkflowSession {
	return c.sess
}

func (c *ConfirmBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ConfirmBatchCommand) setSession(sess *session.WorkflowSession) error {
	if sess == nil {
		return ErrSessionIsRequired
	}
	if err := sess.Validate(); err != nil {
		return err
	}

	c.sess = sess
	return nil
}
