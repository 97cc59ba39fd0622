// Package commands contains the operations that process customer orders.
// Every command is validated on construction and executed by its handler.
package commands

import (
	"errors"
	"fmt"

	"menu/internal/core/domain/model/order"
)

// FailurePrefix starts every failure shown to a customer.
const FailurePrefix = "Unable to process: "

var (
	ErrCourseIsUnknown = errors.New("course is unknown")
	ErrItemIDIsInvalid = errors.New("item id is invalid")
)

// CourseIsUnknownError reports an order for a course name nobody registered.
type CourseIsUnknownError struct {
	Name  string
	Cause error
}

func NewCourseIsUnknownError(name string, cause error) *CourseIsUnknownError {
	return &CourseIsUnknownError{Name: name, Cause: cause}
}

func (e *CourseIsUnknownError) Error() string {
	return fmt.Sprintf("Invalid course '%s' given in order", e.Name)
}

func (e *CourseIsUnknownError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCourseIsUnknown, e.Cause}
	}
	return []error{ErrCourseIsUnknown}
}

// ItemIDIsInvalidError reports a token that is not a non-negative integer.
type ItemIDIsInvalidError struct {
	Token string
}

func NewItemIDIsInvalidError(token string) *ItemIDIsInvalidError {
	return &ItemIDIsInvalidError{Token: token}
}

func (e *ItemIDIsInvalidError) Error() string {
	return fmt.Sprintf("Invalid ID '%s' given in order", e.Token)
}

func (e *ItemIDIsInvalidError) Unwrap() error {
	return ErrItemIDIsInvalid
}

// ItemIDIsOutOfRangeError reports an all-digit token too large for an item
// identifier. No catalog carries such an item, so it reads like an unknown one.
type ItemIDIsOutOfRangeError struct {
	Token string
}

func NewItemIDIsOutOfRangeError(token string) *ItemIDIsOutOfRangeError {
	return &ItemIDIsOutOfRangeError{Token: token}
}

func (e *ItemIDIsOutOfRangeError) Error() string {
	return fmt.Sprintf("Invalid ID %s given in order", e.Token)
}

func (e *ItemIDIsOutOfRangeError) Unwrap() error {
	return order.ErrItemIsUnknown
}

// FailureMessage formats err the way it is shown to a customer.
func FailureMessage(err error) string {
	return FailurePrefix + err.Error()
}
