package models

import "github.com/shopspring/decimal"

// PricingSummary is derived on every query, never stored.
type PricingSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}
