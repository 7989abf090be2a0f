package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineItem struct {
	FoodID   int64           `json:"food_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Cart is the aggregate for one in-progress order, keyed by the caller's
// session. Discount is the amount fixed at the last coupon apply; it is not
// recomputed when items change.
type Cart struct {
	ID              uuid.UUID       `json:"id"`
	SessionID       string          `json:"session_id"`
	Items           []CartLineItem  `json:"items"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	Discount        decimal.Decimal `json:"discount"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		ID:        uuid.New(),
		SessionID: sessionID,
		Items:     []CartLineItem{},
		Discount:  decimal.Zero,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// AddOrIncrement bumps the quantity of an existing line item for the food,
// or appends a new line item with quantity 1.
func (c *Cart) AddOrIncrement(food FoodItem) {
	for i := range c.Items {
		if c.Items[i].FoodID == food.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, CartLineItem{
		FoodID:   food.ID,
		Name:     food.Name,
		Price:    food.Price,
		Image:    food.Image,
		Quantity: 1,
	})
}

// Increment returns false when no line item carries foodID.
func (c *Cart) Increment(foodID int64) bool {
	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			c.Items[i].Quantity++
			return true
		}
	}

	return false
}

// Decrement lowers the quantity by one, but never below 1. Dropping a line
// item requires an explicit Remove. Returns false when nothing changed.
func (c *Cart) Decrement(foodID int64) bool {
	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			if c.Items[i].Quantity > 1 {
				c.Items[i].Quantity--
				return true
			}

			return false
		}
	}

	return false
}

// Remove deletes the line item unconditionally, regardless of quantity.
// Returns false when foodID is not in the cart.
func (c *Cart) Remove(foodID int64) bool {
	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}

	return false
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero

	for _, item := range c.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}

type AddItemRequest struct {
	FoodID int64 `json:"food_id" validate:"required,gt=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" validate:"required,max=500"`
}
