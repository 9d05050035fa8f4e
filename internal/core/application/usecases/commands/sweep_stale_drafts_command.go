package commands

import (
	"errors"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrSweepStaleDraftsCommandIsNotConstructed = errors.New(
	"SweepStaleDraftsCommand must be created via NewSweepStaleDraftsCommand constructor",
)

// SweepStaleDraftsCommand represents a request to cancel draft orders
// that have not been touched for longer than the given age.
type SweepStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewSweepStaleDraftsCommand creates a sweep command.
// The age must be positive.
func NewSweepStaleDraftsCommand(olderThan time.Duration) (SweepStaleDraftsCommand, error) {
	sweepCommand := SweepStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setOlderThan(olderThan); err != nil {
		return SweepStaleDraftsCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleDraftsCommandIsNotConstructed)
}

// OlderThan returns the minimum idle age for a draft to be swept.
func (c SweepStaleDraftsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *SweepStaleDraftsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidError("olderThan")
	}

	c.olderThan = olderThan
	return nil
}
