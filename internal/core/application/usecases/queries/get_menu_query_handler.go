package queries

import (
	"context"

	"menu/internal/core/ports"
)

// GetMenuQueryHandler reads the menu from the course repository.
// Courses are returned in registration order, items by ascending identifier.
type GetMenuQueryHandler struct {
	courses ports.CourseRepository
}

// NewGetMenuQueryHandler creates a handler reading from the given repository.
func NewGetMenuQueryHandler(courses ports.CourseRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{courses: courses}
}

// Handle executes the query.
func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	registered := h.courses.All()
	menu := make([]GetMenuQueryResponse, 0, len(registered))
	for _, rc := range registered {
		items := rc.Course.Catalog().Items()
		resp := GetMenuQueryResponse{
			Course: rc.Name,
			Items:  make([]MenuItemResponse, 0, len(items)),
		}
		for _, it := range items {
			resp.Items = append(resp.Items, MenuItemResponse{
				ID:       it.ID(),
				Name:     it.Name(),
				Category: it.Category().String(),
			})
		}
		menu = append(menu, resp)
	}

	return menu, nil
}
