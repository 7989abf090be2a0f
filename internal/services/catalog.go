package service

import (
	"context"

	"github.com/crazebite/crazebite-api/internal/catalog"
	"github.com/crazebite/crazebite-api/internal/errors"
	"github.com/crazebite/crazebite-api/internal/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) []models.Category
	ListItemsByCategory(ctx context.Context, key string) []models.FoodItem
	SearchItems(ctx context.Context, query string) []models.FoodItem
	GetFoodItem(ctx context.Context, id int64) (*models.FoodItem, error)
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) CatalogService {
	return &catalogService{catalog: c}
}

func (s *catalogService) ListCategories(_ context.Context) []models.Category {
	return s.catalog.Categories()
}

func (s *catalogService) ListItemsByCategory(_ context.Context, key string) []models.FoodItem {
	return s.catalog.ItemsByCategory(key)
}

func (s *catalogService) SearchItems(_ context.Context, query string) []models.FoodItem {
	return s.catalog.ItemsByName(query)
}

func (s *catalogService) GetFoodItem(_ context.Context, id int64) (*models.FoodItem, error) {
	item, ok := s.catalog.Item(id)
	if !ok {
		return nil, errors.NotFoundError("Food item not found")
	}

	return &item, nil
}
