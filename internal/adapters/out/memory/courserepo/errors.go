package courserepo

import (
	"fmt"

	"menu/internal/pkg/errs"
)

// CourseIsAlreadyRegisteredError reports a second course added under a taken name.
type CourseIsAlreadyRegisteredError struct {
	Name string
}

func NewCourseIsAlreadyRegisteredError(name string) *CourseIsAlreadyRegisteredError {
	return &CourseIsAlreadyRegisteredError{Name: name}
}

func (e *CourseIsAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("duplicate course name added to menu: '%s' course already exists", e.Name)
}

func (e *CourseIsAlreadyRegisteredError) Unwrap() error {
	return errs.NewObjectAlreadyExistsError("course", e.Name)
}
