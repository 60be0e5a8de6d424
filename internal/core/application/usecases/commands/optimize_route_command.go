package commands

import (
	"errors"

	"batching/internal/core/domain/model/session"
	"batching/internal/pkg/guard"
)

var (
	ErrOptimizeRouteCommandIsNotConstructed = errors.New(
		"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
	)
	ErrWorkingSetIsEmpty      = errors.New("working set is empty")
	ErrStartLocationIsMissing = errors.New("start location is not set")
)

// OptimizeRouteCommand represents a request to compute an optimized visiting
// order for the session's working set.
type OptimizeRouteCommand struct { //nolint:recvcheck //using for validation
	sess *session.WorkflowSession

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand creates a command to optimize the session's route.
// The session must have a start location and a non-empty working set.
func NewOptimizeRouteCommand(sess *session.WorkflowSession) (OptimizeRouteCommand, error) {
	command := OptimizeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSession(sess); err != nil {
		return OptimizeRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

// Session returns the session whose route is optimized.
func (c OptimizeRouteCommand) Session() *session.WorkflowSession {
	return c.sess
}

func (c *OptimizeRouteCommand) setSession(sess *session.WorkflowSession) error {
	if sess == nil {
		return ErrSessionIsRequired
	}

	if err := errors.Join(
		sess.Validate(),
		c.validateOptimizable(sess),
	); err != nil {
		return err
	}

	c.sess = sess
	return nil
}

func (c *OptimizeRouteCommand) validateOptimizable(sess *session.WorkflowSession) error {
	if sess.Validate() != nil {
		return nil
	}

	var set []error
	if sess.WorkingSet().Len() == 0 {
		set = append(set, ErrWorkingSetIsEmpty)
	}
	if sess.StartLocationID().Validate() != nil {
		set = append(set, ErrStartLocationIsMissing)
	}
	return errors.Join(set...)
}
