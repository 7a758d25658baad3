package commands

import (
	"errors"

	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// NewOrderItem carries the raw line data for one product in a creation
// request. Field-level validation (positive IDs, quantities and prices,
// non-empty names) happens when the handler builds domain items; the
// command only checks structural completeness.
type NewOrderItem struct {
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateOrderCommand represents a request to place a new customer order.
// Encapsulates the owning customer and the requested order lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("cust-001", []NewOrderItem{
//	    {ProductID: 101, ProductName: "Laptop", Quantity: 2, UnitPrice: decimal.RequireFromString("49999.99")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []NewOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer ID is present and at least one item was given.
func NewCreateOrderCommand(customerID string, items []NewOrderItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []NewOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []NewOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
