package commands

import (
	"errors"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
	"ownplate/internal/pkg/errs"
	"ownplate/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request by the restaurant operator
// to move an order to a new lifecycle status. The locale hint is optional
// and only affects the language of the customer notification.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(restaurantID, orderID, callerUID,
//	    order.Accepted, "ja")
//	if err != nil {
//	    return fmt.Errorf("invalid update request: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order status: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	orderID      kernel.UUID
	callerUID    string
	target       order.Status
	locale       string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// Validates that both identifiers are valid, the caller identity is present,
// and the target is a defined status value. Whether the transition itself is
// permitted is decided by the aggregate inside the transaction.
func NewUpdateOrderStatusCommand(
	restaurantID kernel.UUID,
	orderID kernel.UUID,
	callerUID string,
	target order.Status,
	locale string,
) (UpdateOrderStatusCommand, error) {
	updateCommand := UpdateOrderStatusCommand{
		locale: locale,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setIDs(restaurantID, orderID),
		updateCommand.setCallerUID(callerUID),
		updateCommand.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (c UpdateOrderStatusCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerUID returns the authenticated caller's identity.
func (c UpdateOrderStatusCommand) CallerUID() string {
	return c.callerUID
}

// TargetStatus returns the requested status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status {
	return c.target
}

// Locale returns the requested notification locale, empty when absent.
func (c UpdateOrderStatusCommand) Locale() string {
	return c.locale
}

func (c *UpdateOrderStatusCommand) setIDs(restaurantID, orderID kernel.UUID) error {
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

func (c *UpdateOrderStatusCommand) setCallerUID(callerUID string) error {
	if callerUID == "" {
		return errs.NewValueIsRequiredError("callerUID")
	}

	c.callerUID = callerUID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
