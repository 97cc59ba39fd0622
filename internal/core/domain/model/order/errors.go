package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"menu/internal/core/domain/model/item"
)

var (
	ErrItemIsUnknown      = errors.New("item is unknown")
	ErrCategoryIsMissing  = errors.New("category is missing")
	ErrItemIsRepeated     = errors.New("item is repeated")
	ErrCategoryIsRepeated = errors.New("category is repeated")
)

// ItemIsUnknownError reports an identifier the course catalog does not carry.
type ItemIsUnknownError struct {
	ID int
}

func NewItemIsUnknownError(id int) *ItemIsUnknownError {
	return &ItemIsUnknownError{ID: id}
}

func (e *ItemIsUnknownError) Error() string {
	return fmt.Sprintf("Invalid ID %d given in order", e.ID)
}

func (e *ItemIsUnknownError) Unwrap() error {
	return ErrItemIsUnknown
}

// CategoryIsMissingError reports required categories that have no units.
// Several categories are reported together in one sentence.
type CategoryIsMissingError struct {
	Categories []item.Category
}

func NewCategoryIsMissingError(categories ...item.Category) *CategoryIsMissingError {
	return &CategoryIsMissingError{Categories: categories}
}

func (e *CategoryIsMissingError) Error() string {
	parts := make([]string, 0, len(e.Categories))
	for i, c := range e.Categories {
		part := c.String() + " is missing"
		if i > 0 {
			part = lowerFirst(part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func (e *CategoryIsMissingError) Unwrap() error {
	return ErrCategoryIsMissing
}

// ItemIsRepeatedError reports an item ordered more times than its course allows.
type ItemIsRepeatedError struct {
	Name  string
	Count int
}

func NewItemIsRepeatedError(it item.Item, count int) *ItemIsRepeatedError {
	return &ItemIsRepeatedError{Name: it.Name(), Count: count}
}

func (e *ItemIsRepeatedError) Error() string {
	return fmt.Sprintf("%s cannot be ordered more than once", e.Name)
}

func (e *ItemIsRepeatedError) Unwrap() error {
	return ErrItemIsRepeated
}

// CategoryIsRepeatedError reports a category whose total exceeds what its course allows.
type CategoryIsRepeatedError struct {
	Category item.Category
	Count    int
}

func NewCategoryIsRepeatedError(category item.Category, count int) *CategoryIsRepeatedError {
	return &CategoryIsRepeatedError{Category: category, Count: count}
}

func (e *CategoryIsRepeatedError) Error() string {
	return fmt.Sprintf("%s cannot be ordered more than once", e.Category)
}

func (e *CategoryIsRepeatedError) Unwrap() error {
	return ErrCategoryIsRepeated
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
