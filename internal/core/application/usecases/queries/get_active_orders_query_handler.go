package queries

import (
	"context"
	"time"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves a restaurant's in-flight orders from
// the database. Reads rows directly, skipping aggregate reconstruction.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the restaurant's orders in Placed,
// Accepted or CookingCompleted status, oldest placement first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			total_charge,
			time_placed
		FROM orders
		WHERE restaurant_id = ? AND status IN (?, ?, ?)
		ORDER BY time_placed
	`, query.RestaurantID().Bytes(),
		order.Placed, order.Accepted, order.CookingCompleted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var number, status int
		var totalCharge string
		var timePlaced *time.Time

		err = rows.Scan(
			&id,
			&number,
			&status,
			&totalCharge,
			&timePlaced,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:          orderID,
			OrderNumber: order.FormatOrderNumber(number),
			Status:      order.Status(status),
			TotalCharge: totalCharge,
			TimePlaced:  timePlaced,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
