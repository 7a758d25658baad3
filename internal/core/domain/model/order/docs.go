// Package order provides domain entities and business logic for customer
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns order lines and manages the lifecycle
//   - Item: A value object for a single order line with captured unit price
//   - Status: A state machine that enforces valid order status transitions
//   - MergeItems: The pure merge-by-product function behind item assembly
//
// Key business rules:
//   - Orders must have an owning customer and at least one item
//   - Items are unique by product ID; adding a duplicate merges quantities
//   - The total amount is an exact decimal derived from the items on demand
//   - Status follows PENDING -> PROCESSING (sweep) or PENDING -> CANCELLED
//     (owner cancellation); both target states are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
