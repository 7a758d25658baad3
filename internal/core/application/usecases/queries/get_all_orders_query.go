package queries

import (
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

// ErrGetAllOrdersQueryIsNotConstructed indicates that a GetAllOrdersQuery was
// created with a default constructor instead of NewGetAllOrdersQuery.
var ErrGetAllOrdersQueryIsNotConstructed = errs.NewValueIsRequiredError(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor")

// GetAllOrdersQuery represents a request to list orders, optionally narrowed
// to a single status.
//
// Example:
//
//	status := order.Pending
//	query, err := NewGetAllOrdersQuery(&status)
//	if err != nil {
//	    return err
//	}
type GetAllOrdersQuery struct {
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for listing orders. A nil statusFilter
// means all orders regardless of status; a non-nil filter must be a valid
// status value.
func NewGetAllOrdersQuery(statusFilter *order.Status) (GetAllOrdersQuery, error) {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		statusFilter: statusFilter,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the query was properly constructed.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// StatusFilter returns the optional status filter. Nil means no filtering.
func (q GetAllOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}
