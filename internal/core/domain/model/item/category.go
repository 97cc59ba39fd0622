package item

import (
	"fmt"

	"menu/internal/pkg/errs"
)

// Category classifies an item for both presence and repetition rules.
// The numeric value is also the item's sort rank when an order is rendered.
type Category int

const (
	Main Category = iota
	Side
	Drink
	Dessert
)

// Categories returns every category in rank order.
func Categories() []Category {
	return []Category{Main, Side, Drink, Dessert}
}

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Main:    "Main",
		Side:    "Side",
		Drink:   "Drink",
		Dessert: "Dessert",
	}
}

// Validate checks that the category is one of the defined values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the display name ("Main", "Side", "Drink", "Dessert"),
// or "Unknown" for an undefined value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
