package catalog

import (
	"fmt"

	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

// catalog files carry prices as decimal strings so no float conversion
// happens on the way in.
type fileItem struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
	Image    string `yaml:"image"`
}

type catalogFile struct {
	Categories []models.Category `yaml:"categories"`
	Items      []fileItem        `yaml:"items"`
}

// LoadFile reads a YAML catalog file and builds a validated Catalog from it.
func LoadFile(path string) (*Catalog, error) {
	var file catalogFile

	if err := cleanenv.ReadConfig(path, &file); err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	items := make([]models.FoodItem, 0, len(file.Items))

	for _, fi := range file.Items {
		p, err := decimal.NewFromString(fi.Price)
		if err != nil {
			return nil, fmt.Errorf("food item %d (%s): invalid price %q: %w", fi.ID, fi.Name, fi.Price, err)
		}

		items = append(items, models.FoodItem{
			ID:       fi.ID,
			Name:     fi.Name,
			Price:    p,
			Category: fi.Category,
			Image:    fi.Image,
		})
	}

	return New(file.Categories, items)
}
