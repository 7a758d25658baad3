package commands

import (
	"context"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation requests.
// Cancellation is the most failure-sensitive path in the lifecycle: it must
// reject unknown orders, orders owned by someone else, and orders that have
// left the Pending state, and it must not lose a race against the processing
// sweep that runs concurrently with inbound requests.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID, "cust-001")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrObjectNotFound, errs.ErrNotAuthorized, or
//	    // order.ErrIllegalTransition, matchable via errors.Is
//	    return err
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
//
// Checks run in a fixed sequence with no side effects until the final write:
//  1. The order is loaded; an unknown ID fails with ObjectNotFoundError.
//  2. Ownership is verified before any state inspection, so a non-owner
//     receives NotAuthorizedError and learns nothing about the order state.
//  3. A Pending-state precheck fails fast with an IllegalTransitionError
//     naming the current status.
//  4. The status write itself is conditional: "set Cancelled only if still
//     Pending" as one atomic operation. If the sweep promoted the order
//     between the read and the write, zero rows match; the handler then
//     re-reads the status and fails with an IllegalTransitionError carrying
//     the fresh value instead of silently overwriting a terminal state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.CustomerID()) {
		return errs.NewNotAuthorizedError("cancel order")
	}

	if aggregate.Status() != order.Pending {
		return order.NewIllegalTransitionError(aggregate.Status(), order.Cancelled, aggregate.Status())
	}

	updated, err := repo.UpdateStatusIf(ctx, cmd.OrderID(), order.Pending, order.Cancelled)
	if err != nil {
		return err
	}

	if !updated {
		// Lost the race: a concurrent writer changed the status after our
		// read. Re-read so the error reports the actual current state.
		current, readErr := repo.Get(ctx, cmd.OrderID())
		if readErr != nil {
			return readErr
		}
		return order.NewIllegalTransitionError(order.Pending, order.Cancelled, current.Status())
	}

	return uow.Commit(ctx)
}
