package commands

import (
	"context"
	"fmt"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
	"ownplate/internal/core/domain/model/restaurant"
	"ownplate/internal/core/ports"
	"ownplate/internal/pkg/errs"

	"go.uber.org/zap"
)

// UpdateOrderStatusCommandHandler handles operator status transitions.
//
// The flow is: authorize the caller as the restaurant operator, apply the
// transition to the order aggregate inside a single transaction, commit, and
// only then dispatch the customer notification the transition called for.
// The dispatch is best-effort: it happens strictly outside the transaction
// (so a transaction retry can never send twice) and its failure is logged,
// never returned.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(
//	    uowFactory, restaurants, localizer, gateway, region, "OwnPlate", logger)
//	cmd, _ := NewUpdateOrderStatusCommand(restaurantID, orderID, uid, order.Accepted, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantRepository
	localizer   ports.MessageLocalizer
	gateway     ports.NotificationGateway
	region      kernel.Region
	senderName  string
	logger      *zap.SugaredLogger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	localizer ports.MessageLocalizer,
	gateway ports.NotificationGateway,
	region kernel.Region,
	senderName string,
	logger *zap.SugaredLogger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		localizer:   localizer,
		gateway:     gateway,
		region:      region,
		senderName:  senderName,
		logger:      logger,
	}
}

// Handle processes the status update command.
//
// The restaurant is resolved outside the order transaction; the operator
// check runs before any order state is touched. The order load, both
// transition gates, and the status write happen within one transaction, so
// of two concurrent conflicting updates exactly one wins and the loser is
// rejected by the gates against the committed state.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rest, err := h.restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if !rest.IsOperatedBy(cmd.CallerUID()) {
		return errs.NewPermissionDeniedError("the user does not have an authority to perform this operation")
	}

	change, err := h.applyTransition(ctx, cmd)
	if err != nil {
		return err
	}

	h.dispatchNotification(ctx, rest, change, cmd.Locale())
	return nil
}

// applyTransition runs the transactional part of the update and returns the
// committed StatusChange.
func (h *UpdateOrderStatusCommandHandler) applyTransition(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (order.StatusChange, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusChange{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return order.StatusChange{}, err
	}

	change, err := aggregate.ChangeStatus(cmd.TargetStatus())
	if err != nil {
		return order.StatusChange{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.StatusChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusChange{}, err
	}

	return change, nil
}

// dispatchNotification sends the customer message for a committed change.
// Runs after commit; failures are logged and swallowed.
func (h *UpdateOrderStatusCommandHandler) dispatchNotification(
	ctx context.Context,
	rest *restaurant.Restaurant,
	change order.StatusChange,
	locale string,
) {
	if !change.ShouldNotify() {
		return
	}

	if locale == "" {
		locale = h.region.DefaultLocale()
	}

	text := h.localizer.Translate(string(change.Notification), locale)
	message := fmt.Sprintf("%s %s %s", text, rest.Name(), change.OrderNumber)

	if err := h.gateway.Send(ctx, h.senderName, message, change.PhoneNumber); err != nil {
		h.logger.Errorw("failed to send order status notification",
			"restaurantId", rest.ID().String(),
			"orderNumber", change.OrderNumber,
			"status", change.To.String(),
			"error", err,
		)
	}
}
