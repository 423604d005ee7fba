package commands_test

import (
	"context"

	"ownplate/internal/core/application/usecases/commands"
	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
	"ownplate/internal/core/domain/model/restaurant"
	"ownplate/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, restaurantID, orderID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockNotificationGateway struct{ mock.Mock }

func (m *MockNotificationGateway) Send(ctx context.Context, senderName, text, phoneNumber string) error {
	args := m.Called(ctx, senderName, text, phoneNumber)
	return args.Error(0)
}

type MockMessageLocalizer struct{ mock.Mock }

func (m *MockMessageLocalizer) Translate(key, locale string) string {
	args := m.Called(key, locale)
	return args.String(0)
}
