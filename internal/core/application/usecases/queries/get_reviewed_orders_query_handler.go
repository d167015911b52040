package queries

import (
	"context"

	"backoffice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReviewedOrdersQueryHandler retrieves every order that left Pending.
// Powers the in-progress and completed boards; the caller partitions the
// result by terminal status.
type GetReviewedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewedOrdersQueryHandler creates a handler for reviewed order
// queries. Requires a GORM database connection for query execution.
func NewGetReviewedOrdersQueryHandler(db *gorm.DB) GetReviewedOrdersQueryHandler {
	return GetReviewedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all reviewed orders, newest checkout
// first, with their line items in display order.
func (h GetReviewedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReviewedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrderRows(ctx, h.db, "o.status != ?", int(order.Pending))
}
