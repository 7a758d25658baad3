package queries

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders, optionally filtered by status.
// Item rows are fetched in a single query and grouped by order identifier,
// so the handler issues exactly two statements regardless of result size.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. An empty result is a valid outcome and yields
// an empty slice, never nil.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			status,
			created_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if filter := query.StatusFilter(); filter != nil {
		sql += ` WHERE status = ?`
		args = append(args, int(*filter))
	}
	sql += ` ORDER BY created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			customerID string
			status     int
			createdAt  time.Time
		)
		if err = rows.Scan(&id, &customerID, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		orderStatus := order.Status(status)
		if err = orderStatus.Validate(); err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:         orderID,
			CustomerID: customerID,
			Status:     orderStatus,
			CreatedAt:  createdAt,
			Items:      make([]OrderItemResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, query.StatusFilter()); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].TotalAmount = totalOf(orders[i].Items)
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse, statusFilter *order.Status) error {
	sql := `
		SELECT
			oi.order_id,
			oi.product_id,
			oi.product_name,
			oi.quantity,
			oi.unit_price
		FROM order_items oi
	`
	args := make([]any, 0, 1)
	if statusFilter != nil {
		sql += ` JOIN orders o ON o.id = oi.order_id WHERE o.status = ?`
		args = append(args, int(*statusFilter))
	}
	sql += ` ORDER BY oi.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	indexByID := make(map[uuid.UUID]int, len(orders))
	for i := range orders {
		indexByID[orders[i].ID.Bytes()] = i
	}

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse
		var unitPrice decimal.Decimal

		if err = rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &unitPrice); err != nil {
			return err
		}
		item.UnitPrice = unitPrice

		if i, ok := indexByID[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
