package order

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries an identifier. Identifiers are immutable after the
	// first save.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned and immutable")
)

// Order represents a customer order in the system. It is the aggregate root
// that owns the order lines and manages the order lifecycle from creation
// through the processing sweep or cancellation.
//
// Order follows these invariants:
//   - Must have a non-empty owning customer identifier
//   - Must contain at least one item; items are unique by product ID
//   - The total amount is derived from the items and never stored redundantly
//   - Status transitions follow the state machine defined by Status
//   - Can only be created through NewOrder (or RestoreOrder for persistence)
//
// The identifier is assigned by the persistence layer on first save and is
// immutable thereafter. Item contents are immutable after creation in the
// modeled flows; only the status changes, through Cancel or the bulk sweep.
type Order struct {
	// id is the unique identifier, zero until the persistence layer assigns it
	id kernel.UUID

	// customerID identifies the owning customer; immutable after creation
	customerID string

	// status represents the current state in the order lifecycle
	status Status

	// items holds the order lines, unique by product ID
	items []Item

	// createdAt is set once at construction and never mutated
	createdAt time.Time

	// updatedAt is an advisory timestamp refreshed on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status for the given customer.
// This is the only way to create a valid order, ensuring all business
// invariants are maintained.
//
// Validation rules:
//   - customerID must not be empty
//   - items must contain at least one entry, each created via NewItem
//
// Items are assembled through the same merge path used by AddItem, so two
// incoming lines with the same product ID collapse into one with the summed
// quantity.
//
// The returned order has no identifier yet; the persistence layer assigns
// one on first save via AssignID.
func NewOrder(customerID string, items []Item) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	now := time.Now().UTC()
	order := &Order{
		customerID:    customerID,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	for _, item := range items {
		if err := order.AddItem(item); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
// All fields are validated; the identifier must already be assigned.
// This function must not be used to create new orders.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	status Status,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
// The zero UUID is returned for orders that have not been saved yet.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// HasID reports whether the persistence layer has assigned an identifier.
func (o *Order) HasID() bool {
	return o.id.Validate() == nil
}

// AssignID sets the order's identifier exactly once. The persistence layer
// calls this on first save; any later call fails with ErrOrderIDAlreadyAssigned.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if o.HasID() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// IsOwnedBy reports whether the given customer owns this order.
// Cancellation authorization is decided by this check, before any state
// inspection, so non-owners learn nothing about the order's state.
func (o *Order) IsOwnedBy(customerID string) bool {
	return o.customerID == customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the construction timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the advisory last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem folds an order line into the item collection via MergeItems:
// a line for an already-present product ID increments that line's quantity
// instead of creating a duplicate. This is the single merge code path, used
// both during construction and for explicit corrections.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = MergeItems(o.items, item)
	o.touch()
	return nil
}

// TotalAmount computes the order total as the exact decimal sum of
// price x quantity over all items. The total is derived on demand and is
// never an independent source of truth.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.UnitPrice().Mul(item.Quantity()))
	}
	return total
}

// Cancel transitions the order to Cancelled.
//
// Only Pending orders can be cancelled; any other state fails with an
// IllegalTransitionError carrying the current status. Note that against
// shared storage the in-memory transition is advisory: the authoritative
// write is the repository's conditional status update.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkProcessing transitions the order to Processing.
// Only Pending orders are eligible; the bulk sweep is the sole caller of
// this transition in the modeled flows.
func (o *Order) MarkProcessing() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
