package commands

import (
	"errors"

	"orderservice/internal/pkg/guard"
)

var (
	ErrProcessPendingOrdersCommandIsNotConstructed = errors.New(
		"ProcessPendingOrdersCommand must be created via NewProcessPendingOrdersCommand constructor",
	)
)

// ProcessPendingOrdersCommand triggers one run of the bulk processing sweep:
// every order currently in Pending status is promoted to Processing in a
// single atomic, set-wide write.
//
// Example:
//
//	cmd := NewProcessPendingOrdersCommand()
//	handler := NewProcessPendingOrdersCommandHandler(uowFactory)
//
//	count, err := handler.Handle(ctx, cmd)
//	// This is typically invoked periodically by a scheduler
type ProcessPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessPendingOrdersCommand creates a command for one sweep run.
// This is a parameterless command; the transition it performs is fixed.
func NewProcessPendingOrdersCommand() ProcessPendingOrdersCommand {
	return ProcessPendingOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessPendingOrdersCommandIsNotConstructed if validation fails.
func (c ProcessPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingOrdersCommandIsNotConstructed)
}
