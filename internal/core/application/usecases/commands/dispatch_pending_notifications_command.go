package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// DefaultDispatchBatchSize bounds how many pending notifications one run sends.
	DefaultDispatchBatchSize = 50
	MaxDispatchBatchSize     = 500
)

var (
	ErrDispatchPendingNotificationsCommandIsNotConstructed = errors.New(
		"DispatchPendingNotificationsCommand must be created via NewDispatchPendingNotificationsCommand constructor",
	)
)

// DispatchPendingNotificationsCommand sends the oldest pending notifications.
type DispatchPendingNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchPendingNotificationsCommand creates a dispatch command. A zero batch
// size means DefaultDispatchBatchSize.
func NewDispatchPendingNotificationsCommand(batchSize int) (DispatchPendingNotificationsCommand, error) {
	if batchSize == 0 {
		batchSize = DefaultDispatchBatchSize
	}
	if batchSize < 1 || batchSize > MaxDispatchBatchSize {
		return DispatchPendingNotificationsCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, 1, MaxDispatchBatchSize)
	}

	return DispatchPendingNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchPendingNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingNotificationsCommandIsNotConstructed)
}

func (c DispatchPendingNotificationsCommand) BatchSize() int {
	return c.batchSize
}
