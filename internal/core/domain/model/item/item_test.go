package item_test

import (
	"testing"

	"menu/internal/core/domain/model/item"
	"menu/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid attributes", func(t *testing.T) {
		it, err := item.NewItem(1, "Eggs", item.Main)

		require.NoError(t, err)
		require.NoError(t, it.Validate())
		assert.Equal(t, 1, it.ID())
		assert.Equal(t, "Eggs", it.Name())
		assert.Equal(t, item.Main, it.Category())
		assert.False(t, it.IsDefaultDrink())
	})

	t.Run("should fail with negative id", func(t *testing.T) {
		_, err := item.NewItem(-1, "Eggs", item.Main)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := item.NewItem(1, "  ", item.Main)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should report every invalid attribute", func(t *testing.T) {
		_, err := item.NewItem(-3, "", item.Category(9))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item id")
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "category")
	})
}

func TestMustNewItem(t *testing.T) {
	t.Run("should panic on invalid input", func(t *testing.T) {
		assert.Panics(t, func() {
			item.MustNewItem(1, "", item.Side)
		})
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var it item.Item

		assert.Equal(t, item.ErrItemIsNotConstructed, it.Validate())
	})
}

func TestDefaultDrink(t *testing.T) {
	water := item.DefaultDrink()

	assert.Equal(t, item.DefaultDrinkID, water.ID())
	assert.Equal(t, "Water", water.Name())
	assert.Equal(t, item.Drink, water.Category())
	assert.True(t, water.IsDefaultDrink())
}
