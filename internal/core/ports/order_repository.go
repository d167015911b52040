package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and deleting order entities
// based on their review state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no record matches.
	Get(ctx context.Context, id kernel.ObjectID) (*order.Order, error)

	// GetAllInPendingStatus retrieves the orders awaiting review,
	// newest checkout first.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllReviewed retrieves every order that left Pending, newest
	// checkout first. Callers partition the result into the in-progress
	// and completed buckets.
	GetAllReviewed(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order record outright. Rejecting a Pending order
	// and discarding a reviewed one both go through here; there is no
	// soft-delete state.
	Delete(ctx context.Context, id kernel.ObjectID) error
}
