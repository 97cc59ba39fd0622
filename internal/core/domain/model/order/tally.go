package order

import (
	"maps"
	"slices"

	"menu/internal/core/domain/model/item"
)

// Tally accumulates the units requested in a single order.
// The zero value is not usable; create one with NewTally for every order.
type Tally struct {
	byID       map[int]int
	byCategory map[item.Category]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		byID:       make(map[int]int),
		byCategory: make(map[item.Category]int),
	}
}

// AddUnit records one more unit of it. The caller guarantees it is a valid
// catalog item.
func (t *Tally) AddUnit(it item.Item) {
	t.byID[it.ID()]++
	t.byCategory[it.Category()]++
}

// CountByID returns the units of the item, 0 if it was never added.
func (t *Tally) CountByID(id int) int {
	return t.byID[id]
}

// CountByCategory returns the units of all items in the category.
func (t *Tally) CountByCategory(category item.Category) int {
	return t.byCategory[category]
}

// PresentIDs returns the identifiers with at least one unit, ascending.
func (t *Tally) PresentIDs() []int {
	return slices.Sorted(maps.Keys(t.byID))
}

// Total returns the number of units across all items.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.byID {
		total += n
	}
	return total
}
