package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrGetReviewedOrdersQueryIsNotConstructed = errors.New(
	"GetReviewedOrdersQuery must be created via NewGetReviewedOrdersQuery constructor",
)

// GetReviewedOrdersQuery retrieves every order that left Pending, newest
// checkout first. Callers split the result into the in-progress and
// completed buckets with services.PartitionByStatus.
type GetReviewedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReviewedOrdersQuery creates a query to retrieve reviewed orders.
func NewGetReviewedOrdersQuery() GetReviewedOrdersQuery {
	return GetReviewedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReviewedOrdersQueryIsNotConstructed if validation fails.
func (q GetReviewedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewedOrdersQueryIsNotConstructed)
}
