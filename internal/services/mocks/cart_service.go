package mocks

import (
	"context"

	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	return cartResult(args)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	return cartResult(args)
}

func (m *CartService) IncrementItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, foodID)

	return cartResult(args)
}

func (m *CartService) DecrementItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, foodID)

	return cartResult(args)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, foodID)

	return cartResult(args)
}

func (m *CartService) ApplyCoupon(ctx context.Context, sessionID string, req *models.ApplyCouponRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	return cartResult(args)
}

func (m *CartService) SetDeliveryAddress(ctx context.Context, sessionID string, req *models.UpdateAddressRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	return cartResult(args)
}

func (m *CartService) Summary(ctx context.Context, sessionID string) (*models.PricingSummary, error) {
	args := m.Called(ctx, sessionID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PricingSummary), args.Error(1)
}

func cartResult(args mock.Arguments) (*models.Cart, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}
