package item

import (
	"errors"
	"fmt"
	"strings"

	"menu/internal/pkg/errs"
	"menu/internal/pkg/guard"
)

const (
	// DefaultDrinkID is reserved in every catalog for the default drink.
	DefaultDrinkID = 0

	// DefaultDrinkName is the display name of the default drink.
	DefaultDrinkName = "Water"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is an orderable entry of a course catalog. It is immutable.
type Item struct { //nolint:recvcheck // setters are used during construction only
	id       int
	name     string
	category Category

	guard guard.ConstructorGuard
}

// NewItem creates an item after validating all of its attributes.
// All validation failures are returned together.
//
// Example:
//
//	eggs, err := item.NewItem(1, "Eggs", item.Main)
func NewItem(id int, name string, category Category) (Item, error) {
	it := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setCategory(category),
	); err != nil {
		return Item{}, err
	}

	return it, nil
}

// MustNewItem is NewItem for the fixed catalogs declared at package level.
// It panics on invalid input.
func MustNewItem(id int, name string, category Category) Item {
	it, err := NewItem(id, name, category)
	if err != nil {
		panic(err)
	}
	return it
}

// DefaultDrink returns the item every catalog carries under DefaultDrinkID.
func DefaultDrink() Item {
	return MustNewItem(DefaultDrinkID, DefaultDrinkName, Drink)
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the identifier, unique within the item's catalog.
func (i Item) ID() int {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

// Category returns the item's category.
func (i Item) Category() Category {
	return i.category
}

// IsDefaultDrink reports whether the item is the reserved default drink.
func (i Item) IsDefaultDrink() bool {
	return i.id == DefaultDrinkID
}

func (i *Item) setID(id int) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is negative", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}
