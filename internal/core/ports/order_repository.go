package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides plain CRUD-style access it exposes the two atomic status writes the
// lifecycle depends on: a single-row conditional update used by cancellation
// and a predicate-scoped bulk update used by the processing sweep.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The repository assigns the order's identifier on first save.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders in storage's natural order, optionally
	// filtered by status. A nil filter returns every order.
	GetAll(ctx context.Context, statusFilter *order.Status) ([]*order.Order, error)

	// UpdateStatusIf atomically sets the order's status to next only if its
	// stored status still equals expected. Returns true iff the write
	// happened. This is the conditional write that keeps cancellation from
	// overwriting a concurrent sweep's result.
	UpdateStatusIf(ctx context.Context, id kernel.UUID, expected, next order.Status) (bool, error)

	// UpdateAllInStatus atomically moves every order currently in the from
	// status to the to status in one predicate-scoped write, returning the
	// number of orders actually changed.
	UpdateAllInStatus(ctx context.Context, from, to order.Status) (int64, error)
}
