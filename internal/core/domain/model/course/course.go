package course

import (
	"errors"

	"menu/internal/core/domain/model/item"
	"menu/internal/core/domain/model/order"
	"menu/internal/core/domain/services"
	"menu/internal/pkg/guard"
)

var (
	// ErrCourseIsNotConstructed is returned when a Course was not created through
	// NewBreakfast, NewLunch or NewDinner.
	ErrCourseIsNotConstructed = errors.New("Course must be created via its variant constructor")
)

// Breakfast catalog identifiers.
const (
	EggsID   = 1
	ToastID  = 2
	CoffeeID = 3
)

// Lunch catalog identifiers.
const (
	SandwichID = 1
	ChipsID    = 2
	SodaID     = 3
)

// Dinner catalog identifiers.
const (
	SteakID    = 1
	PotatoesID = 2
	WineID     = 3
	CakeID     = 4
)

// Course binds a catalog to the rules of one variant. A Course holds no
// per-order state, so ProcessOrder can be called concurrently.
type Course struct {
	kind    Kind
	catalog item.Catalog
	rules   rules

	guard guard.ConstructorGuard
}

// NewBreakfast returns the breakfast course: Eggs, Toast and Coffee, where
// Coffee is the only item that may be repeated.
func NewBreakfast() *Course {
	return mustNewCourse(Breakfast, rules{
		checks: []check{
			limitItemRepeats(isItem(CoffeeID)),
		},
	},
		item.MustNewItem(EggsID, "Eggs", item.Main),
		item.MustNewItem(ToastID, "Toast", item.Side),
		item.MustNewItem(CoffeeID, "Coffee", item.Drink),
	)
}

// NewLunch returns the lunch course: Sandwich, Chips and Soda, where only
// sides may be repeated.
func NewLunch() *Course {
	return mustNewCourse(Lunch, rules{
		checks: []check{
			limitItemRepeats(isCategory(item.Side)),
			limitCategoryRepeats(item.Side),
		},
	},
		item.MustNewItem(SandwichID, "Sandwich", item.Main),
		item.MustNewItem(ChipsID, "Chips", item.Side),
		item.MustNewItem(SodaID, "Soda", item.Drink),
	)
}

// NewDinner returns the dinner course: Steak, Potatoes, Wine and Cake. Water
// is always served, nothing may be repeated and a dessert is required.
func NewDinner() *Course {
	return mustNewCourse(Dinner, rules{
		preseedDefaultDrink: true,
		checks: []check{
			limitItemRepeats(nil),
			requireCategory(item.Dessert),
		},
	},
		item.MustNewItem(SteakID, "Steak", item.Main),
		item.MustNewItem(PotatoesID, "Potatoes", item.Side),
		item.MustNewItem(WineID, "Wine", item.Drink),
		item.MustNewItem(CakeID, "Cake", item.Dessert),
	)
}

// New returns the course of the given variant, or nil for Unknown.
func New(kind Kind) *Course {
	switch kind {
	case Breakfast:
		return NewBreakfast()
	case Lunch:
		return NewLunch()
	case Dinner:
		return NewDinner()
	case Unknown:
	}
	return nil
}

func mustNewCourse(kind Kind, r rules, items ...item.Item) *Course {
	catalog, err := item.NewCatalog(items...)
	if err != nil {
		panic(err)
	}
	return &Course{
		kind:    kind,
		catalog: catalog,
		rules:   r,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the course was created through a variant constructor.
func (c *Course) Validate() error {
	if c == nil {
		return ErrCourseIsNotConstructed
	}
	return c.guard.Validate(ErrCourseIsNotConstructed)
}

// Kind returns the course variant.
func (c *Course) Kind() Kind {
	return c.kind
}

// Catalog returns the items the course offers.
func (c *Course) Catalog() item.Catalog {
	return c.catalog
}

// ProcessOrder validates the requested identifiers and returns the tally of
// the order. Every call starts from a new tally; the first violated rule is
// returned as the error.
//
// Example:
//
//	tally, err := course.NewBreakfast().ProcessOrder([]int{1, 2, 3, 3})
//	if err != nil {
//	    fmt.Println("Unable to process:", err)
//	}
func (c *Course) ProcessOrder(itemIDs []int) (*order.Tally, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tally := order.NewTally()
	water, _ := c.catalog.Lookup(item.DefaultDrinkID)

	if c.rules.preseedDefaultDrink {
		tally.AddUnit(water)
	}

	for _, id := range itemIDs {
		it, ok := c.catalog.Lookup(id)
		if !ok {
			return nil, order.NewItemIsUnknownError(id)
		}
		tally.AddUnit(it)
	}

	if tally.CountByCategory(item.Drink) == 0 {
		tally.AddUnit(water)
	}

	if err := checkRequiredCategories(tally); err != nil {
		return nil, err
	}

	for _, chk := range c.rules.checks {
		if err := chk(c.catalog, tally); err != nil {
			return nil, err
		}
	}

	return tally, nil
}

// Render formats a tally returned by ProcessOrder, e.g. "Eggs, Toast, Coffee(3)".
func (c *Course) Render(tally *order.Tally) string {
	return services.NewOrderRenderer().Render(c.catalog, tally)
}

// Arrange returns the lines of a tally returned by ProcessOrder in rendering order.
func (c *Course) Arrange(tally *order.Tally) []services.Line {
	return services.NewOrderRenderer().Arrange(c.catalog, tally)
}
