package commands

import (
	"context"
	"time"

	"ownplate/internal/core/domain/model/kernel"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Moves the order from ValidationOK to Placed on behalf of its owner, fixing
// the tip, total charge and placement time inside a single transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, region)
//	cmd, _ := NewPlaceOrderCommand(restaurantID, orderID, uid, tip, true)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	region     kernel.Region
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and the
// deployment's payment region for tip rounding.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, region kernel.Region) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		region:     region,
		now:        time.Now,
	}
}

// Handle processes the order placement command.
// The order load, the ownership and state checks, and the money updates all
// happen within one transaction; a concurrent placement of the same order
// loses by observing the committed Placed status. No notification is sent
// on placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Place(cmd.CallerUID(), cmd.Tip(), cmd.SendSMS(), h.region, h.now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
