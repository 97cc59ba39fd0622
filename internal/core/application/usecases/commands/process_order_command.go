package commands

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"menu/internal/core/domain/model/item"
	"menu/internal/core/domain/model/order"
	"menu/internal/pkg/errs"
	"menu/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
)

// ProcessOrderCommand requests one order for a named course.
//
// Example:
//
//	cmd, err := ParseProcessOrderCommand("Breakfast 1,2,3")
//	if err != nil {
//	    fmt.Println(FailureMessage(err))
//	    return
//	}
//	result, err := handler.Handle(ctx, cmd)
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	courseName string
	itemIDs    []int

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command from a course name and item identifiers.
// The course name must not be blank and every identifier must be non-negative.
func NewProcessOrderCommand(courseName string, itemIDs []int) (ProcessOrderCommand, error) {
	cmd := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourseName(courseName),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return ProcessOrderCommand{}, err
	}

	return cmd, nil
}

// ParseProcessOrderCommand creates a command from an order line such as
// "Breakfast 1,2,3". The course name ends at the first space and the rest is a
// comma-separated list of identifiers made of digits only.
//
// A line without an identifier list is rejected as missing both main and side.
// Identifiers are checked before the course name is resolved.
func ParseProcessOrderCommand(line string) (ProcessOrderCommand, error) {
	courseName, list, found := strings.Cut(strings.TrimSpace(line), " ")
	if !found {
		return ProcessOrderCommand{}, order.NewCategoryIsMissingError(item.Main, item.Side)
	}

	tokens := strings.Split(list, ",")
	itemIDs := make([]int, 0, len(tokens))
	for _, token := range tokens {
		id, err := parseItemID(token)
		if err != nil {
			return ProcessOrderCommand{}, err
		}
		itemIDs = append(itemIDs, id)
	}

	return NewProcessOrderCommand(courseName, itemIDs)
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// CourseName returns the name the course is registered under.
func (c ProcessOrderCommand) CourseName() string {
	return c.courseName
}

// ItemIDs returns the requested identifiers in request order.
func (c ProcessOrderCommand) ItemIDs() []int {
	return slices.Clone(c.itemIDs)
}

func (c *ProcessOrderCommand) setCourseName(courseName string) error {
	if strings.TrimSpace(courseName) == "" {
		return errs.NewValueIsRequiredError("course name")
	}

	c.courseName = courseName
	return nil
}

func (c *ProcessOrderCommand) setItemIDs(itemIDs []int) error {
	for _, id := range itemIDs {
		if id < 0 {
			return NewItemIDIsInvalidError(strconv.Itoa(id))
		}
	}

	c.itemIDs = slices.Clone(itemIDs)
	return nil
}

func parseItemID(token string) (int, error) {
	if token == "" || strings.IndexFunc(token, isNotDigit) >= 0 {
		return 0, NewItemIDIsInvalidError(token)
	}
	id, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) {
		return 0, NewItemIDIsOutOfRangeError(token)
	}
	if err != nil {
		return 0, NewItemIDIsInvalidError(token)
	}
	return id, nil
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}
