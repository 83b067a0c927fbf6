package sim

import "fmt"

// Ingredient is one of the closed set of kinds a wrap can be built from.
type Ingredient int

const (
	Pita Ingredient = iota
	Meat
	Cucumber
	Fries
	Sauce
	Cheese
)

// Ingredients lists every kind in display order.
var Ingredients = []Ingredient{Pita, Meat, Cucumber, Fries, Sauce, Cheese}

// Valid reports whether i is a declared kind.
func (i Ingredient) Valid() bool {
	return i >= Pita && i <= Cheese
}

// Price returns the base price of one kind. Panics on an undeclared kind.
func (i Ingredient) Price() int {
	switch i {
	case Pita:
		return 5
	case Meat:
		return 20
	case Cucumber:
		return 5
	case Fries:
		return 8
	case Sauce:
		return 2
	case Cheese:
		return 10
	}
	panic(fmt.Sprintf("Price: unknown ingredient %d", int(i)))
}

// String returns the display name.
func (i Ingredient) String() string {
	switch i {
	case Pita:
		return "Pita"
	case Meat:
		return "Meat"
	case Cucumber:
		return "Cucumber"
	case Fries:
		return "Fries"
	case Sauce:
		return "Sauce"
	case Cheese:
		return "Cheese"
	}
	return fmt.Sprintf("Ingredient(%d)", int(i))
}

// Color is a presentation hint (hex fill colour) for renderers.
func (i Ingredient) Color() string {
	switch i {
	case Pita:
		return "#F2D2BD"
	case Meat:
		return "#8B4513"
	case Cucumber:
		return "#4ADE80"
	case Fries:
		return "#FACC15"
	case Sauce:
		return "#F8FAFC"
	case Cheese:
		return "#FDBA74"
	}
	return ""
}

// ParseIngredient maps a display name back to its kind.
func ParseIngredient(name string) (Ingredient, error) {
	for _, i := range Ingredients {
		if i.String() == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown ingredient %q", name)
}

// kindSet is the set of distinct kinds present in a sequence.
type kindSet uint8

func kindsOf(items []Ingredient) kindSet {
	var s kindSet
	for _, i := range items {
		if i.Valid() {
			s |= 1 << uint(i)
		}
	}
	return s
}

func (s kindSet) has(i Ingredient) bool {
	return s&(1<<uint(i)) != 0
}

// price sums the base price of every kind in the set, once per kind.
func (s kindSet) price() int {
	total := 0
	for _, i := range Ingredients {
		if s.has(i) {
			total += i.Price()
		}
	}
	return total
}
