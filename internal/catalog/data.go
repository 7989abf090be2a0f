package catalog

import (
	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/shopspring/decimal"
)

var defaultCategories = []models.Category{
	{Key: "pizza", Title: "Pizza", Image: "pizza.png"},
	{Key: "burgers", Title: "Burgers", Image: "burger.png"},
	{Key: "fries", Title: "Fries", Image: "fries.png"},
	{Key: "chicken", Title: "Chicken", Image: "chickenSandwich.png"},
	{Key: "salad", Title: "Fresh Salad", Image: "fresh-salad.png"},
	{Key: "drinks", Title: "Cold Drinks", Image: "coldcoffee.png"},
	{Key: "desserts", Title: "Desserts", Image: "ChocolateCake.png"},
	{Key: "icecream", Title: "Ice Cream", Image: "ice-cream_bowl.png"},
	{Key: "pasta", Title: "Pasta", Image: "pastaAlfredo.png"},
	{Key: "takeout", Title: "Takeout", Image: "takeout.png"},
}

var defaultFoods = []models.FoodItem{
	{ID: 1, Name: "Cheese Burger", Price: price("8.99"), Category: "burgers", Image: "burger.png"},
	{ID: 2, Name: "Pepperoni Pizza", Price: price("12.50"), Category: "pizza", Image: "pizza.png"},
	{ID: 3, Name: "Crispy Fries", Price: price("4.99"), Category: "fries", Image: "fries.png"},
	{ID: 4, Name: "Double Beef Burger", Price: price("11.49"), Category: "burgers", Image: "burger.png"},
	{ID: 5, Name: "Margherita Pizza", Price: price("10.99"), Category: "pizza", Image: "pizza.png"},
	{ID: 6, Name: "Loaded Cheese Fries", Price: price("6.49"), Category: "fries", Image: "fries.png"},
	{ID: 7, Name: "Chicken Sandwich", Price: price("7.99"), Category: "chicken", Image: "chickenSandwich.png"},
	{ID: 8, Name: "Spicy Chicken Wings", Price: price("9.25"), Category: "chicken", Image: "chickenSandwich.png"},
	{ID: 9, Name: "Fresh Garden Salad", Price: price("6.99"), Category: "salad", Image: "fresh-salad.png"},
	{ID: 10, Name: "Caesar Salad", Price: price("7.49"), Category: "salad", Image: "fresh-salad.png"},
	{ID: 11, Name: "Cold Coffee", Price: price("3.99"), Category: "drinks", Image: "coldcoffee.png"},
	{ID: 12, Name: "Fresh Lime Soda", Price: price("2.99"), Category: "drinks", Image: "coldcoffee.png"},
	{ID: 13, Name: "Chocolate Cake", Price: price("5.99"), Category: "desserts", Image: "ChocolateCake.png"},
	{ID: 14, Name: "Brownie Sundae", Price: price("6.75"), Category: "desserts", Image: "ChocolateCake.png"},
	{ID: 15, Name: "Ice Cream Bowl", Price: price("4.49"), Category: "icecream", Image: "ice-cream_bowl.png"},
	{ID: 16, Name: "Vanilla Scoop", Price: price("2.99"), Category: "icecream", Image: "ice-cream_bowl.png"},
	{ID: 17, Name: "Pasta Alfredo", Price: price("9.99"), Category: "pasta", Image: "pastaAlfredo.png"},
	{ID: 18, Name: "Penne Arrabbiata", Price: price("9.49"), Category: "pasta", Image: "pastaAlfredo.png"},
	{ID: 19, Name: "Family Combo Box", Price: price("24.99"), Category: "takeout", Image: "takeout.png"},
	{ID: 20, Name: "Snack Box", Price: price("12.99"), Category: "takeout", Image: "takeout.png"},
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns the built-in CrazeBite catalog.
func Default() *Catalog {
	c, err := New(defaultCategories, defaultFoods)
	if err != nil {
		// checked-in data, cannot fail
		panic(err)
	}

	return c
}
