// Package restaurant provides the Restaurant entity referenced by orders.
// The entity carries the operator's user identity used for authorization of
// status updates, and the display name interpolated into notifications.
package restaurant

import (
	"errors"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the referenced entity that owns orders. It is read-only for
// this subsystem; restaurant management happens elsewhere.
type Restaurant struct {
	id   kernel.UUID
	uid  string
	name string

	isConstructed bool
}

// NewRestaurant creates a Restaurant with validation.
//
// Parameters:
//   - id: unique identifier of the restaurant
//   - uid: the operator's user identity (authorizes status updates)
//   - name: display name interpolated into customer notifications
func NewRestaurant(id kernel.UUID, uid, name string) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if uid == "" {
		return nil, errs.NewValueIsRequiredError("uid")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurantName")
	}

	return &Restaurant{
		id:            id,
		uid:           uid,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Restaurant was created through the constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OperatorUID returns the user identity of the restaurant operator.
func (r *Restaurant) OperatorUID() string {
	return r.uid
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// IsOperatedBy reports whether the given caller is the restaurant operator.
func (r *Restaurant) IsOperatedBy(uid string) bool {
	return uid != "" && r.uid == uid
}
