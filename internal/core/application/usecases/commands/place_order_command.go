package commands

import (
	"errors"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/pkg/errs"
	"ownplate/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request by the owning user to place an
// order that has passed validation. Tip and SMS opt-in are optional: an
// absent tip means zero.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(restaurantID, orderID, callerUID,
//	    kernel.NewMoneyFromFloat(1.50), true)
//	if err != nil {
//	    return fmt.Errorf("invalid place request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, region)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	orderID      kernel.UUID
	callerUID    string
	tip          kernel.Money
	sendSMS      bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that both identifiers are valid, the caller identity is present,
// and the tip is not negative.
func NewPlaceOrderCommand(
	restaurantID kernel.UUID,
	orderID kernel.UUID,
	callerUID string,
	tip kernel.Money,
	sendSMS bool,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		sendSMS: sendSMS,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setIDs(restaurantID, orderID),
		placeCommand.setCallerUID(callerUID),
		placeCommand.setTip(tip),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OrderID returns the identifier of the order to place.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerUID returns the authenticated caller's identity.
func (c PlaceOrderCommand) CallerUID() string {
	return c.callerUID
}

// Tip returns the tip amount, zero when the request omitted it.
func (c PlaceOrderCommand) Tip() kernel.Money {
	return c.tip
}

// SendSMS returns the customer's SMS opt-in.
func (c PlaceOrderCommand) SendSMS() bool {
	return c.sendSMS
}

func (c *PlaceOrderCommand) setIDs(restaurantID, orderID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCallerUID(callerUID string) error {
	if callerUID == "" {
		return errs.NewValueIsRequiredError("callerUID")
	}

	c.callerUID = callerUID
	return nil
}

func (c *PlaceOrderCommand) setTip(tip kernel.Money) error {
	if tip.IsNegative() {
		return errs.NewValueIsInvalidError("tip")
	}

	c.tip = tip
	return nil
}
