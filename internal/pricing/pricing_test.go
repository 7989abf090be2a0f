package pricing_test

import (
	"testing"

	"github.com/crazebite/crazebite-api/internal/coupon"
	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/crazebite/crazebite-api/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// the storefront's seed cart: Burger 8.99, Pizza 12.50, Fries 4.99
func seedCart() *models.Cart {
	cart := models.NewCart("s")
	cart.AddOrIncrement(models.FoodItem{ID: 1, Name: "Cheese Burger", Price: decimal.RequireFromString("8.99")})
	cart.AddOrIncrement(models.FoodItem{ID: 2, Name: "Pepperoni Pizza", Price: decimal.RequireFromString("12.50")})
	cart.AddOrIncrement(models.FoodItem{ID: 3, Name: "Crispy Fries", Price: decimal.RequireFromString("4.99")})

	return cart
}

func TestSummarize(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultDeliveryFee)

	t.Run("Seed cart without coupon", func(t *testing.T) {
		cart := seedCart()

		summary := engine.Summarize(cart)

		assert.Equal(t, "26.48", summary.Subtotal.String())
		assert.Equal(t, "0", summary.Discount.String())
		assert.Equal(t, "2.99", summary.DeliveryFee.String())
		assert.Equal(t, "29.47", summary.Total.String())
	})

	t.Run("Seed cart with CRAZE10 applied", func(t *testing.T) {
		cart := seedCart()
		cart.CouponCode = coupon.DefaultCode
		cart.Discount = coupon.DefaultTable().Evaluate(coupon.DefaultCode)

		summary := engine.Summarize(cart)

		assert.Equal(t, "26.48", summary.Subtotal.String())
		assert.Equal(t, "10", summary.Discount.String())
		assert.Equal(t, "19.47", summary.Total.String())
	})

	t.Run("Quantity changes flow through the subtotal", func(t *testing.T) {
		cart := seedCart()
		cart.Increment(3)
		cart.Increment(3)

		assert.Equal(t, "36.46", engine.Summarize(cart).Subtotal.String())

		// decrement three times; the floor at quantity 1 stops the third
		cart.Decrement(3)
		cart.Decrement(3)
		cart.Decrement(3)

		assert.Equal(t, "26.48", engine.Summarize(cart).Subtotal.String())
	})

	t.Run("Empty cart still pays the delivery fee", func(t *testing.T) {
		cart := models.NewCart("s")

		summary := engine.Summarize(cart)

		assert.Equal(t, "0", summary.Subtotal.String())
		assert.Equal(t, "2.99", summary.Total.String())
	})

	t.Run("Oversized discount drives the total negative, unclamped", func(t *testing.T) {
		cart := models.NewCart("s")
		cart.AddOrIncrement(models.FoodItem{ID: 3, Name: "Crispy Fries", Price: decimal.RequireFromString("4.99")})
		cart.Discount = decimal.NewFromInt(10)

		summary := engine.Summarize(cart)

		assert.Equal(t, "-2.02", summary.Total.String())
		assert.True(t, summary.Total.IsNegative())
	})

	t.Run("Total identity holds for arbitrary carts", func(t *testing.T) {
		cart := seedCart()
		cart.Discount = decimal.RequireFromString("3.33")
		cart.Increment(1)
		cart.Remove(2)

		summary := engine.Summarize(cart)

		want := summary.Subtotal.Sub(summary.Discount).Add(summary.DeliveryFee)
		assert.True(t, summary.Total.Equal(want))
		assert.True(t, summary.Subtotal.Equal(cart.Subtotal()))
	})
}

func TestSummarizeIsPure(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultDeliveryFee)
	cart := seedCart()

	first := engine.Summarize(cart)

	// mutate and re-derive: no caching, the summary tracks the cart
	cart.Increment(1)
	second := engine.Summarize(cart)

	assert.Equal(t, "26.48", first.Subtotal.String())
	assert.Equal(t, "35.47", second.Subtotal.String())
}
