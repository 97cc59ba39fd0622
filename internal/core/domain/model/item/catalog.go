package item

import (
	"errors"
	"fmt"
	"slices"

	"menu/internal/pkg/errs"
	"menu/internal/pkg/guard"
)

var (
	// ErrCatalogIsNotConstructed is returned when a Catalog was not created through NewCatalog.
	ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")
)

// Catalog maps identifiers to the items of one course. The default drink is
// always present under DefaultDrinkID; other items are supplied by the course.
type Catalog struct {
	items map[int]Item
	ids   []int

	guard guard.ConstructorGuard
}

// NewCatalog builds a catalog from the default drink plus the given items.
// Items must be constructed, must not use the reserved identifier and must
// not share an identifier with each other.
func NewCatalog(items ...Item) (Catalog, error) {
	water := DefaultDrink()
	c := Catalog{
		items: map[int]Item{water.ID(): water},
		ids:   []int{water.ID()},
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	for _, it := range items {
		if err := c.add(it); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Catalog{}, err
	}

	slices.Sort(c.ids)
	return c, nil
}

// Validate ensures the catalog was created through NewCatalog.
func (c Catalog) Validate() error {
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Lookup resolves an identifier. The second result is false for identifiers
// the catalog does not carry.
func (c Catalog) Lookup(id int) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Items returns every item in ascending identifier order.
func (c Catalog) Items() []Item {
	out := make([]Item, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of items, default drink included.
func (c Catalog) Len() int {
	return len(c.ids)
}

func (c *Catalog) add(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if it.ID() == DefaultDrinkID {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is reserved for %s", DefaultDrinkID, DefaultDrinkName),
		)
	}
	if existing, ok := c.items[it.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is already used by %s", it.ID(), existing.Name()),
		)
	}
	c.items[it.ID()] = it
	c.ids = append(c.ids, it.ID())
	return nil
}
