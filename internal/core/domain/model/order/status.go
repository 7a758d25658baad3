package order

import (
	"errors"
	"fmt"

	"orderservice/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel for all status state machine violations.
// Use errors.Is to classify an IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing   (bulk sweep only)
//	          │
//	          └──> Cancelled    (cancellation only)
//
// Processing and Cancelled are both terminal: neither has an outgoing
// transition. In particular an order that has reached Processing can never
// be cancelled.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status may still be cancelled by their owner and are
	// eligible for the periodic processing sweep.
	Pending

	// Processing indicates the order has been picked up by the processing
	// sweep. Terminal: cancellation is no longer possible.
	Processing

	// Cancelled indicates the owner cancelled the order before processing.
	// Terminal: no further transitions are allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses a status name such as "PENDING" into a Status.
// Used when reading status filters from external callers.
// Returns an error for anything outside the three defined values.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method ensures Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name used on the wire and in storage filters.
//
// Returns:
//   - "PENDING", "PROCESSING", or "CANCELLED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Processing || s == Cancelled
}

// Process transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (processing sweep picked the order up)
//
// Any other source state fails with an IllegalTransitionError.
func (s Status) Process() (Status, error) {
	if s != Pending {
		return Unknown, NewIllegalTransitionError(s, Processing, s)
	}
	return Processing, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (owner cancelled before processing)
//
// Any other source state fails with an IllegalTransitionError. Cancelled is
// reachable only from Pending; once an order is Processing it stays that way.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, NewIllegalTransitionError(s, Cancelled, s)
	}
	return Cancelled, nil
}

// IllegalTransitionError reports a status transition outside the state
// machine's transition table. It carries the attempted source and target
// states plus the actual current state for caller diagnostics; Current can
// differ from From when a concurrent writer changed the status between a
// read and the conditional write.
type IllegalTransitionError struct {
	From    Status
	To      Status
	Current Status
}

// NewIllegalTransitionError creates an error for a rejected status transition.
func NewIllegalTransitionError(from, to, current Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Current: current}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s is not allowed, order is currently %s",
		ErrIllegalTransition, e.From, e.To, e.Current)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
