// Package queries contains read operations for the back-office UI.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read the database directly and return lightweight response
// models instead of rehydrating full aggregates.
package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders awaiting review.
// This is a parameterless query; it always returns the full Pending bucket,
// newest checkout first.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve orders awaiting review.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// OrderResponse is one row on an order board: the summary the operator needs
// to pick an order for review plus the full line-item detail for expansion.
type OrderResponse struct {
	ID            kernel.ObjectID
	ClientName    string
	ClientContact string
	ClientCity    string
	ClientAddress string
	PaymentMethod order.PaymentMethod
	Status        order.Status
	TotalPrice    float64
	CreatedAt     time.Time
	Products      []OrderItemResponse
}

// OrderItemResponse is one line item within an order board row.
type OrderItemResponse struct {
	Name      string
	Price     float64
	Quantity  int
	ProductID string
}
