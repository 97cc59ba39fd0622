// Package queries contains read operations over the registered courses.
package queries

import (
	"errors"

	"menu/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists every registered course with the items it offers.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(courseRepo)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read menu: %w", err)
//	}
//	for _, c := range menu {
//	    fmt.Printf("%s: %d items\n", c.Course, len(c.Items))
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the complete menu.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is one course of the menu.
type GetMenuQueryResponse struct {
	Course string
	Items  []MenuItemResponse
}

// MenuItemResponse is one orderable item of a course.
type MenuItemResponse struct {
	ID       int
	Name     string
	Category string
}
