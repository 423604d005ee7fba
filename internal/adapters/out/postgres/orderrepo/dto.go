// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by restaurant and status.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	UID             string
	Number          int
	Status          int             `gorm:"index"`
	Total           decimal.Decimal `gorm:"type:numeric"`
	Tip             decimal.Decimal `gorm:"type:numeric"`
	TotalCharge     decimal.Decimal `gorm:"type:numeric"`
	PhoneNumber     string
	SendSMS         bool
	StripePaymentID *string
	TimePlaced      *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Money attributes are stored as exact numeric values.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:              order.ID().Bytes(),
		RestaurantID:    order.RestaurantID().Bytes(),
		UID:             order.OwnerUID(),
		Number:          order.Number(),
		Status:          int(order.Status()),
		Total:           order.Total().Decimal(),
		Tip:             order.Tip().Decimal(),
		TotalCharge:     order.TotalCharge().Decimal(),
		PhoneNumber:     order.PhoneNumber(),
		SendSMS:         order.SendSMS(),
		StripePaymentID: order.StripePaymentID(),
		TimePlaced:      order.TimePlaced(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and payment state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		dto.UID,
		dto.Number,
		order.Status(dto.Status),
		kernel.NewMoneyFromDecimal(dto.Total),
		kernel.NewMoneyFromDecimal(dto.Tip),
		kernel.NewMoneyFromDecimal(dto.TotalCharge),
		dto.PhoneNumber,
		dto.SendSMS,
		dto.StripePaymentID,
		dto.TimePlaced,
	)
}
