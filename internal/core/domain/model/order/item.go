package order

import (
	"fmt"
	"slices"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem constructor")

// Item is a value object representing a single order line: a product, its
// display name, the ordered quantity, and the unit price captured at
// order-creation time (not a live price lookup).
//
// Items are unique by product ID within an order; merging two lines for the
// same product is handled by MergeItems, never by duplicating entries.
type Item struct {
	productID   int
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Validation rules:
//   - productID must be positive
//   - productName must not be empty
//   - quantity must be positive
//   - unitPrice must be a constructed Money value
func NewItem(productID int, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if productID <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not greater than 0", productID),
		)
	}
	item.productID = productID

	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	item.productName = productName

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	item.quantity = quantity

	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	item.unitPrice = unitPrice

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() int {
	return i.productID
}

// ProductName returns the product display name.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order creation.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// withQuantity returns a copy of the item with a replaced quantity.
// Only the merge path may change a quantity.
func (i Item) withQuantity(quantity int) Item {
	i.quantity = quantity
	return i
}

// MergeItems returns a new item collection with the incoming line folded in.
// If the collection already contains the incoming product ID, that line's
// quantity is incremented by the incoming quantity and the existing unit
// price is kept; otherwise the line is appended. The input slice is never
// mutated, keeping the merge free of hidden side effects and easy to test
// in isolation.
func MergeItems(items []Item, incoming Item) []Item {
	for idx, existing := range items {
		if existing.ProductID() == incoming.ProductID() {
			merged := slices.Clone(items)
			merged[idx] = existing.withQuantity(existing.Quantity() + incoming.Quantity())
			return merged
		}
	}
	return append(slices.Clone(items), incoming)
}
