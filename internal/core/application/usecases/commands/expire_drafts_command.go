package commands

import (
	"errors"
	"fmt"
	"time"

	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

var ErrExpireDraftsCommandIsNotConstructed = errors.New(
	"ExpireDraftsCommand must be created via NewExpireDraftsCommand constructor",
)

// ExpireDraftsCommand represents a request to sweep abandoned drafts: every
// draft untouched for longer than the retention window is marked Expired.
type ExpireDraftsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewExpireDraftsCommand creates a command to expire drafts older than the
// retention window.
func NewExpireDraftsCommand(retention time.Duration) (ExpireDraftsCommand, error) {
	command := ExpireDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRetention(retention); err != nil {
		return ExpireDraftsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireDraftsCommand) Validate() error {
	return c.guard.Validate(ErrExpireDraftsCommandIsNotConstructed)
}

// Retention returns the retention window.
func (c ExpireDraftsCommand) Retention() time.Duration {
	return c.retention
}

func (c *ExpireDraftsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"retention is invalid",
			fmt.Errorf("%s is not greater than 0", retention),
		)
	}

	c.retention = retention
	return nil
}
