package queries_test

import (
	"testing"

	"menu/internal/adapters/out/memory/courserepo"
	"menu/internal/core/application/usecases/queries"
	"menu/internal/core/domain/model/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuQueryHandler_Handle(t *testing.T) {
	repo := courserepo.NewInMemoryCourseRepository()
	require.NoError(t, repo.Add("Breakfast", course.NewBreakfast()))
	require.NoError(t, repo.Add("Dinner", course.NewDinner()))

	h := queries.NewGetMenuQueryHandler(repo)

	t.Run("should list courses in registration order", func(t *testing.T) {
		menu, err := h.Handle(t.Context(), queries.NewGetMenuQuery())

		require.NoError(t, err)
		require.Len(t, menu, 2)
		assert.Equal(t, "Breakfast", menu[0].Course)
		assert.Equal(t, "Dinner", menu[1].Course)
	})

	t.Run("should list items by ascending id with water first", func(t *testing.T) {
		menu, err := h.Handle(t.Context(), queries.NewGetMenuQuery())
		require.NoError(t, err)

		dinner := menu[1].Items
		require.Len(t, dinner, 5)
		assert.Equal(t, queries.MenuItemResponse{ID: 0, Name: "Water", Category: "Drink"}, dinner[0])
		assert.Equal(t, queries.MenuItemResponse{ID: 4, Name: "Cake", Category: "Dessert"}, dinner[4])
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := h.Handle(t.Context(), queries.GetMenuQuery{})

		require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
	})
}

func TestGetMenuQueryHandler_Handle_EmptyRepository(t *testing.T) {
	h := queries.NewGetMenuQueryHandler(courserepo.NewInMemoryCourseRepository())

	menu, err := h.Handle(t.Context(), queries.NewGetMenuQuery())

	require.NoError(t, err)
	assert.Empty(t, menu)
}
