// Package pricing derives the checkout summary from cart state. The
// summary is a pure function of the cart and the delivery fee; nothing is
// cached between calls.
package pricing

import (
	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultDeliveryFee matches the storefront's flat fee.
var DefaultDeliveryFee = decimal.RequireFromString("2.99")

type Engine struct {
	deliveryFee decimal.Decimal
}

func NewEngine(deliveryFee decimal.Decimal) *Engine {
	return &Engine{deliveryFee: deliveryFee}
}

func (e *Engine) DeliveryFee() decimal.Decimal {
	return e.deliveryFee
}

// Summarize computes total = subtotal - discount + deliveryFee. The
// discount is whatever the last coupon apply fixed on the cart; a discount
// larger than subtotal plus fee yields a negative total, which is not
// clamped.
func (e *Engine) Summarize(cart *models.Cart) models.PricingSummary {
	subtotal := cart.Subtotal()

	return models.PricingSummary{
		Subtotal:    subtotal,
		Discount:    cart.Discount,
		DeliveryFee: e.deliveryFee,
		Total:       subtotal.Sub(cart.Discount).Add(e.deliveryFee),
	}
}
