package commands_test

import (
	"errors"
	"testing"

	"ownplate/internal/core/application/usecases/commands"
	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
	"ownplate/internal/core/domain/model/restaurant"
	"ownplate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testOperatorUID = "operator-1"

func testRestaurant(t *testing.T, id kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(id, testOperatorUID, "Sushi Bar")
	require.NoError(t, err)
	return r
}

func newUpdateHandler(
	t *testing.T,
	factory commands.OrderUoWFactory,
	restaurants *MockRestaurantRepository,
	localizer *MockMessageLocalizer,
	gateway *MockNotificationGateway,
) commands.UpdateOrderStatusCommandHandler {
	t.Helper()
	return commands.NewUpdateOrderStatusCommandHandler(
		factory, restaurants, localizer, gateway,
		testRegion(t), "OwnPlate", zap.NewNop().Sugar(),
	)
}

func TestUpdateOrderStatusCommandHandler_Handle_AcceptSendsNotification(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.Accepted, "")

	aggregate := placedOrder(t, restaurantID, orderID, order.Placed, nil, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	localizer := new(MockMessageLocalizer)
	localizer.On("Translate", "msg_order_accepted", "en").
		Return("Your order has been accepted!").Once()

	gateway := new(MockNotificationGateway)
	gateway.On("Send", ctx, "OwnPlate", "Your order has been accepted! Sushi Bar #001", "+15550100").
		Return(nil).Once()

	h := newUpdateHandler(t, factory, restaurants, localizer, gateway)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, aggregate.Status())
	restaurants.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	localizer.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_LocaleHintOverridesRegion(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.CookingCompleted, "ja")

	aggregate := placedOrder(t, restaurantID, orderID, order.Accepted, nil, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	localizer := new(MockMessageLocalizer)
	localizer.On("Translate", "msg_cooking_completed", "ja").Return("お料理の準備ができました。").Once()

	gateway := new(MockNotificationGateway)
	gateway.On("Send", ctx, "OwnPlate", mock.AnythingOfType("string"), "+15550100").Return(nil).Once()

	h := newUpdateHandler(t, factory, restaurants, localizer, gateway)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	localizer.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OptOutSkipsNotification(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.Accepted, "")

	aggregate := placedOrder(t, restaurantID, orderID, order.Placed, nil, false)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	localizer := new(MockMessageLocalizer)
	gateway := new(MockNotificationGateway)

	h := newUpdateHandler(t, factory, restaurants, localizer, gateway)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	localizer.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReacceptIsSilent(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.Accepted, "")

	aggregate := placedOrder(t, restaurantID, orderID, order.Accepted, nil, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	localizer := new(MockMessageLocalizer)
	gateway := new(MockNotificationGateway)

	h := newUpdateHandler(t, factory, restaurants, localizer, gateway)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_GatewayFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.CookingCompleted, "")

	aggregate := placedOrder(t, restaurantID, orderID, order.Accepted, nil, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	localizer := new(MockMessageLocalizer)
	localizer.On("Translate", "msg_cooking_completed", "en").Return("Your order is ready!").Once()

	gateway := new(MockNotificationGateway)
	gateway.On("Send", ctx, "OwnPlate", mock.AnythingOfType("string"), "+15550100").
		Return(errors.New("sms provider unavailable")).Once()

	h := newUpdateHandler(t, factory, restaurants, localizer, gateway)
	err := h.Handle(ctx, cmd)

	// a failed dispatch never turns a committed update into a failure
	require.NoError(t, err)
	assert.Equal(t, order.CookingCompleted, aggregate.Status())
	gateway.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotOperator(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, "intruder",
		order.Accepted, "")

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	factory := new(MockOrderUoWFactory)

	h := newUpdateHandler(t, factory, restaurants, new(MockMessageLocalizer), new(MockNotificationGateway))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.Accepted, "")

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).
		Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID.String())).Once()

	factory := new(MockOrderUoWFactory)

	h := newUpdateHandler(t, factory, restaurants, new(MockMessageLocalizer), new(MockNotificationGateway))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_PaidPickupRejected(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.PickedUp, "")

	paymentID := "pi_123"
	aggregate := placedOrder(t, restaurantID, orderID, order.CookingCompleted, &paymentID, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockNotificationGateway)

	h := newUpdateHandler(t, factory, restaurants, new(MockMessageLocalizer), gateway)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.CookingCompleted, aggregate.Status())
	gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_FrozenStateRejected(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.Accepted, "")

	aggregate := placedOrder(t, restaurantID, orderID, order.PickedUp, nil, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateHandler(t, factory, restaurants, new(MockMessageLocalizer), new(MockNotificationGateway))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrFailedPrecondition)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitErrorSkipsNotification(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(restaurantID, orderID, testOperatorUID,
		order.CookingCompleted, "")

	aggregate := placedOrder(t, restaurantID, orderID, order.Accepted, nil, true)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, restaurantID).Return(testRestaurant(t, restaurantID), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, restaurantID, orderID).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("serialization conflict")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockNotificationGateway)

	h := newUpdateHandler(t, factory, restaurants, new(MockMessageLocalizer), gateway)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
