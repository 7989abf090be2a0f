// Package catalog holds the static food catalog: the immutable list of
// orderable items and their category groupings, with the two read-only
// queries the storefront needs. Both queries are total functions: unmatched
// input yields an empty result, never an error.
package catalog

import (
	"fmt"
	"strings"

	"github.com/crazebite/crazebite-api/internal/models"
)

type Catalog struct {
	categories []models.Category
	items      []models.FoodItem
	byID       map[int64]int
}

// New validates and freezes the catalog data: food ids and category keys
// must be unique and prices non-negative.
func New(categories []models.Category, items []models.FoodItem) (*Catalog, error) {
	keys := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if cat.Key == "" {
			return nil, fmt.Errorf("category %q has an empty key", cat.Title)
		}

		if _, dup := keys[cat.Key]; dup {
			return nil, fmt.Errorf("duplicate category key %q", cat.Key)
		}

		keys[cat.Key] = struct{}{}
	}

	byID := make(map[int64]int, len(items))
	for i, item := range items {
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate food item id %d", item.ID)
		}

		if item.Price.IsNegative() {
			return nil, fmt.Errorf("food item %d (%s) has a negative price", item.ID, item.Name)
		}

		byID[item.ID] = i
	}

	c := &Catalog{
		categories: make([]models.Category, len(categories)),
		items:      make([]models.FoodItem, len(items)),
		byID:       byID,
	}
	copy(c.categories, categories)
	copy(c.items, items)

	return c, nil
}

// Categories returns the full category list in catalog order.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)

	return out
}

// ItemsByCategory returns the items whose category equals key, in catalog
// order. An unknown key yields an empty slice; this is a filter, not a
// lookup with validation.
func (c *Catalog) ItemsByCategory(key string) []models.FoodItem {
	out := []models.FoodItem{}

	for _, item := range c.items {
		if item.Category == key {
			out = append(out, item)
		}
	}

	return out
}

// ItemsByName performs a case-insensitive substring match on item names.
// An empty query matches every item. No fuzzy matching, no ranking.
func (c *Catalog) ItemsByName(query string) []models.FoodItem {
	needle := strings.ToLower(query)
	out := []models.FoodItem{}

	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}

	return out
}

// Item looks up a single food item by id.
func (c *Catalog) Item(id int64) (models.FoodItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.FoodItem{}, false
	}

	return c.items[i], true
}

// Len reports the number of food items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
