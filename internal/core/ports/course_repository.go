// Package ports defines the contracts between the menu application layer and
// its infrastructure, enabling dependency inversion and testability.
package ports

import (
	"menu/internal/core/domain/model/course"
)

// RegisteredCourse is a course together with the name it was registered under.
type RegisteredCourse struct {
	Name   string
	Course *course.Course
}

// CourseRepository is the registration surface that maps course names to courses.
type CourseRepository interface {
	// Add registers a course under name.
	// Registering a name twice fails with errs.ErrObjectAlreadyExists.
	Add(name string, c *course.Course) error

	// Get returns the course registered under name.
	// Unknown names fail with errs.ErrObjectNotFound.
	Get(name string) (*course.Course, error)

	// All returns every registered course in registration order.
	All() []RegisteredCourse
}
