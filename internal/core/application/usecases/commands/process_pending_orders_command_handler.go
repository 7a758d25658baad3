package commands

import (
	"context"

	"orderservice/internal/core/domain/model/order"
)

// ProcessPendingOrdersCommandHandler runs the bulk status sweep.
// It issues exactly one predicate-scoped write against the repository:
// "set status to Processing for every order currently Pending", without
// reading or locking individual rows first. The write is atomic as a set,
// so it cannot race destructively against itself, and cancellation's
// conditional write is the only contended counterpart.
//
// Example:
//
//	handler := NewProcessPendingOrdersCommandHandler(uowFactory)
//	count, err := handler.Handle(ctx, NewProcessPendingOrdersCommand())
//	if err != nil {
//	    // the scheduling loop logs and moves on to the next tick
//	}
type ProcessPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewProcessPendingOrdersCommandHandler creates a handler for the sweep.
// Requires a UoWFactory for transactional persistence.
func NewProcessPendingOrdersCommandHandler(uowFactory UoWFactory) ProcessPendingOrdersCommandHandler {
	return ProcessPendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle promotes all Pending orders to Processing and returns the number of
// orders actually changed. A run with zero eligible orders is a no-op that
// returns 0, not an error.
func (h *ProcessPendingOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessPendingOrdersCommand) (int64, error) {
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

	count, err := uow.OrderRepository().UpdateAllInStatus(ctx, order.Pending, order.Processing)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
