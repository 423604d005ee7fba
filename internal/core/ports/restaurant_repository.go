package ports

import (
	"context"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the read contract for restaurant entities.
// Restaurants are managed by a different subsystem; this one only resolves
// them for operator authorization and notification text.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	// Returns ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
