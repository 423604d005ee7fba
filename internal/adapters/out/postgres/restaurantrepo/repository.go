package restaurantrepo

import (
	"context"
	"errors"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/restaurant"
	"ownplate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
