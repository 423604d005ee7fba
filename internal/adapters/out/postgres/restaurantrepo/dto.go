// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence. Restaurants are read-only in this subsystem;
// the repository only resolves them for authorization and notification text.
package restaurantrepo

import (
	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurant entities.
type RestaurantDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UID  string    `gorm:"index"`
	Name string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toDomain converts a database DTO to a restaurant domain entity.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, dto.UID, dto.Name)
}
