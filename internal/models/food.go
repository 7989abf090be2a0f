package models

import "github.com/shopspring/decimal"

type Category struct {
	Key   string `json:"key"   yaml:"key"`
	Title string `json:"title" yaml:"title"`
	Image string `json:"image" yaml:"image"`
}

type FoodItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}
