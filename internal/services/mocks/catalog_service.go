package mocks

import (
	"context"

	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListCategories(ctx context.Context) []models.Category {
	args := m.Called(ctx)

	return args.Get(0).([]models.Category)
}

func (m *CatalogService) ListItemsByCategory(ctx context.Context, key string) []models.FoodItem {
	args := m.Called(ctx, key)

	return args.Get(0).([]models.FoodItem)
}

func (m *CatalogService) SearchItems(ctx context.Context, query string) []models.FoodItem {
	args := m.Called(ctx, query)

	return args.Get(0).([]models.FoodItem)
}

func (m *CatalogService) GetFoodItem(ctx context.Context, id int64) (*models.FoodItem, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.FoodItem), args.Error(1)
}
