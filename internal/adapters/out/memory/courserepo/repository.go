// Package courserepo provides the in-memory course registry. Courses are
// registered once at startup and read for every order afterwards.
package courserepo

import (
	"strings"
	"sync"

	"menu/internal/core/domain/model/course"
	"menu/internal/core/ports"
	"menu/internal/pkg/errs"
)

var _ ports.CourseRepository = (*InMemoryCourseRepository)(nil)

// InMemoryCourseRepository implements ports.CourseRepository with a map.
// It is safe for concurrent use.
type InMemoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*course.Course
	names   []string
}

// NewInMemoryCourseRepository creates an empty repository.
func NewInMemoryCourseRepository() *InMemoryCourseRepository {
	return &InMemoryCourseRepository{
		courses: make(map[string]*course.Course),
	}
}

// Add registers c under name. Names are case-sensitive.
func (r *InMemoryCourseRepository) Add(name string, c *course.Course) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("course name")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[name]; ok {
		return NewCourseIsAlreadyRegisteredError(name)
	}
	r.courses[name] = c
	r.names = append(r.names, name)
	return nil
}

// Get returns the course registered under name.
func (r *InMemoryCourseRepository) Get(name string) (*course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("course", name)
	}
	return c, nil
}

// All returns every registered course in registration order.
func (r *InMemoryCourseRepository) All() []ports.RegisteredCourse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.RegisteredCourse, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, ports.RegisteredCourse{Name: name, Course: r.courses[name]})
	}
	return out
}
