package course

// Kind tags a course variant.
type Kind int

const (
	// Unknown is the zero value and does not name a course.
	Unknown Kind = iota
	Breakfast
	Lunch
	Dinner
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:   "Unknown",
		Breakfast: "Breakfast",
		Lunch:     "Lunch",
		Dinner:    "Dinner",
	}
}

// Kinds returns every defined course variant.
func Kinds() []Kind {
	return []Kind{Breakfast, Lunch, Dinner}
}

// String returns the course name the variant is registered under by default.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
