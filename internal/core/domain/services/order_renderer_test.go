package services_test

import (
	"strings"
	"testing"

	"menu/internal/core/domain/model/item"
	"menu/internal/core/domain/model/order"
	"menu/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) item.Catalog {
	t.Helper()
	catalog, err := item.NewCatalog(
		item.MustNewItem(1, "Steak", item.Main),
		item.MustNewItem(2, "Potatoes", item.Side),
		item.MustNewItem(3, "Wine", item.Drink),
		item.MustNewItem(4, "Cake", item.Dessert),
		item.MustNewItem(5, "Juice", item.Drink),
		item.MustNewItem(6, "Salad", item.Side),
	)
	require.NoError(t, err)
	return catalog
}

func tallyOf(t *testing.T, catalog item.Catalog, ids ...int) *order.Tally {
	t.Helper()
	tally := order.NewTally()
	for _, id := range ids {
		it, ok := catalog.Lookup(id)
		require.True(t, ok, "unknown id %d", id)
		tally.AddUnit(it)
	}
	return tally
}

func TestOrderRenderer_Render(t *testing.T) {
	catalog := newTestCatalog(t)
	renderer := services.NewOrderRenderer()

	tests := []struct {
		name     string
		ids      []int
		expected string
	}{
		{
			name:     "should sort by category then id",
			ids:      []int{4, 3, 2, 1},
			expected: "Steak, Potatoes, Wine, Cake",
		},
		{
			name:     "should sort items within a category by id",
			ids:      []int{6, 1, 2},
			expected: "Steak, Potatoes, Salad",
		},
		{
			name:     "should keep water in place when it is the only drink",
			ids:      []int{1, 2, 0},
			expected: "Steak, Potatoes, Water",
		},
		{
			name:     "should move water behind a single other drink",
			ids:      []int{0, 1, 2, 3, 4},
			expected: "Steak, Potatoes, Wine, Water, Cake",
		},
		{
			name:     "should move water behind several other drinks",
			ids:      []int{0, 5, 1, 3, 2},
			expected: "Steak, Potatoes, Wine, Juice, Water",
		},
		{
			name:     "should render quantities above one",
			ids:      []int{1, 2, 2, 3, 3, 3},
			expected: "Steak, Potatoes(2), Wine(3)",
		},
		{
			name:     "should leave order without water untouched",
			ids:      []int{3, 5, 1},
			expected: "Steak, Wine, Juice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderer.Render(catalog, tallyOf(t, catalog, tt.ids...))

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOrderRenderer_Render_EmptyTally(t *testing.T) {
	got := services.NewOrderRenderer().Render(newTestCatalog(t), order.NewTally())

	assert.Empty(t, got)
}

func TestOrderRenderer_Arrange(t *testing.T) {
	catalog := newTestCatalog(t)
	tally := tallyOf(t, catalog, 3, 0, 1, 2, 2)

	lines := services.NewOrderRenderer().Arrange(catalog, tally)

	require.Len(t, lines, 4)
	assert.Equal(t, "Steak", lines[0].Item.Name())
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, "Wine", lines[2].Item.Name())
	assert.True(t, lines[3].Item.IsDefaultDrink())
}

func TestOrderRenderer_Render_ListsEveryDistinctItemOnce(t *testing.T) {
	catalog := newTestCatalog(t)
	ids := []int{5, 1, 0, 6, 2, 6, 4, 3}

	got := services.NewOrderRenderer().Render(catalog, tallyOf(t, catalog, ids...))

	seen := make(map[string]bool)
	for _, part := range strings.Split(got, services.Separator) {
		name, _, _ := strings.Cut(part, "(")
		assert.False(t, seen[name], "duplicate entry %q", name)
		seen[name] = true
	}
	assert.Len(t, seen, 7)
}

func TestLine_String(t *testing.T) {
	coffee := item.MustNewItem(3, "Coffee", item.Drink)

	assert.Equal(t, "Coffee", services.Line{Item: coffee, Quantity: 1}.String())
	assert.Equal(t, "Coffee(3)", services.Line{Item: coffee, Quantity: 3}.String())
}
