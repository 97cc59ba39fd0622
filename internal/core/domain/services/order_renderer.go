package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"menu/internal/core/domain/model/item"
	"menu/internal/core/domain/model/order"
)

// Separator joins the entries of a rendered order.
const Separator = ", "

// Line is one distinct item of a rendered order.
type Line struct {
	Item     item.Item
	Quantity int
}

// String formats the line as "Name" or "Name(quantity)".
func (l Line) String() string {
	if l.Quantity == 1 {
		return l.Item.Name()
	}
	return fmt.Sprintf("%s(%d)", l.Item.Name(), l.Quantity)
}

// OrderRenderer turns a validated tally into its canonical text.
//
// Canonical order:
//   - Items sort by category rank, then by identifier
//   - The default drink moves behind the other drinks when at least one other
//     drink was ordered
//
// Example:
//
//	renderer := NewOrderRenderer()
//	text := renderer.Render(catalog, tally) // "Steak, Potatoes, Wine, Water, Cake"
type OrderRenderer struct{}

// NewOrderRenderer creates a new OrderRenderer instance.
func NewOrderRenderer() OrderRenderer {
	return OrderRenderer{}
}

// Render returns the lines of Arrange joined with Separator.
func (r OrderRenderer) Render(catalog item.Catalog, tally *order.Tally) string {
	lines := r.Arrange(catalog, tally)
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, Separator)
}

// Arrange returns one line per item present in the tally, in canonical order.
// Identifiers the catalog does not carry are skipped.
func (r OrderRenderer) Arrange(catalog item.Catalog, tally *order.Tally) []Line {
	lines := make([]Line, 0)
	for _, id := range tally.PresentIDs() {
		it, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		lines = append(lines, Line{Item: it, Quantity: tally.CountByID(id)})
	}

	slices.SortStableFunc(lines, func(a, b Line) int {
		return cmp.Or(
			cmp.Compare(a.Item.Category(), b.Item.Category()),
			cmp.Compare(a.Item.ID(), b.Item.ID()),
		)
	})

	if tally.CountByID(item.DefaultDrinkID) > 0 && tally.CountByCategory(item.Drink) >= 2 {
		lines = moveDefaultDrinkBehindDrinks(lines)
	}
	return lines
}

// moveDefaultDrinkBehindDrinks places the default drink right after the last
// drink, shifting the drinks in between one position forward.
func moveDefaultDrinkBehindDrinks(lines []Line) []Line {
	from, to := -1, -1
	for i, l := range lines {
		if l.Item.Category() != item.Drink {
			continue
		}
		if l.Item.IsDefaultDrink() {
			from = i
		}
		to = i
	}
	if from < 0 || from >= to {
		return lines
	}

	water := lines[from]
	copy(lines[from:to], lines[from+1:to+1])
	lines[to] = water
	return lines
}
