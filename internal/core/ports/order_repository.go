package ports

import (
	"context"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by the (restaurant, order) composite identity; operations
// on different orders are fully independent.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its composite identity.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, restaurantID, orderID kernel.UUID) (*order.Order, error)
}
