// Package queries contains read-only operations over the order store.
// Query handlers bypass the aggregate layer and read projections directly
// from the database, following the CQRS split used by the write side.
package queries

import (
	"errors"
	"time"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
	"ownplate/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves a restaurant's orders that need operator
// attention: everything in Placed, Accepted or CookingCompleted status.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(restaurantID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a restaurant's active orders.
func NewGetActiveOrdersQuery(restaurantID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetActiveOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetActiveOrdersQueryResponse represents one active order row for the
// operator dashboard.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Status      order.Status
	TotalCharge string
	TimePlaced  *time.Time
}
