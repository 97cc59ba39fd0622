package course

import (
	"slices"

	"menu/internal/core/domain/model/item"
	"menu/internal/core/domain/model/order"
)

// check is one variant rule. It returns the first violation it finds.
type check func(catalog item.Catalog, tally *order.Tally) error

// rules is the variant part of a course: what is added before the requested
// items and which checks run after the universal ones.
type rules struct {
	preseedDefaultDrink bool
	checks              []check
}

// checkRequiredCategories is the universal rule: a main and a side are required.
func checkRequiredCategories(tally *order.Tally) error {
	mainMissing := tally.CountByCategory(item.Main) == 0
	sideMissing := tally.CountByCategory(item.Side) == 0

	switch {
	case mainMissing && sideMissing:
		return order.NewCategoryIsMissingError(item.Main, item.Side)
	case mainMissing:
		return order.NewCategoryIsMissingError(item.Main)
	case sideMissing:
		return order.NewCategoryIsMissingError(item.Side)
	}
	return nil
}

// limitItemRepeats fails on the first item, by ascending identifier, ordered
// more than once unless unlimited reports it as exempt. A nil unlimited exempts nothing.
func limitItemRepeats(unlimited func(item.Item) bool) check {
	return func(catalog item.Catalog, tally *order.Tally) error {
		for _, it := range catalog.Items() {
			count := tally.CountByID(it.ID())
			if count <= 1 {
				continue
			}
			if unlimited != nil && unlimited(it) {
				continue
			}
			return order.NewItemIsRepeatedError(it, count)
		}
		return nil
	}
}

// limitCategoryRepeats fails on the first category, by rank, with more than
// one unit, skipping the exempt categories.
func limitCategoryRepeats(exempt ...item.Category) check {
	return func(_ item.Catalog, tally *order.Tally) error {
		for _, c := range item.Categories() {
			if slices.Contains(exempt, c) {
				continue
			}
			if count := tally.CountByCategory(c); count > 1 {
				return order.NewCategoryIsRepeatedError(c, count)
			}
		}
		return nil
	}
}

// requireCategory fails when the category has no units.
func requireCategory(category item.Category) check {
	return func(_ item.Catalog, tally *order.Tally) error {
		if tally.CountByCategory(category) == 0 {
			return order.NewCategoryIsMissingError(category)
		}
		return nil
	}
}

func isItem(id int) func(item.Item) bool {
	return func(it item.Item) bool {
		return it.ID() == id
	}
}

func isCategory(category item.Category) func(item.Item) bool {
	return func(it item.Item) bool {
		return it.Category() == category
	}
}
