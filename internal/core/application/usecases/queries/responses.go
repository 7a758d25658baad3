// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database through lightweight SQL
// read models, bypassing the aggregate and the unit of work.
package queries

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse represents an order as returned by read operations.
// TotalAmount is derived from the item lines at read time; it is never
// stored and never trusted from storage.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  string
	Status      order.Status
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	Items       []OrderItemResponse
}

// OrderItemResponse represents a single order line in a read model.
type OrderItemResponse struct {
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// totalOf sums price x quantity over the lines with exact decimal arithmetic.
func totalOf(items []OrderItemResponse) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
