package sim

import (
	"math/rand"
	"strings"
)

// Order is the ingredient sequence a customer wants, always
// [Pita, Meat, extras..., Sauce].
type Order []Ingredient

// orderExtras are the kinds an order may add between Meat and Sauce.
var orderExtras = []Ingredient{Cucumber, Fries, Cheese}

// Contains reports whether the order asks for kind i.
func (o Order) Contains(i Ingredient) bool {
	return kindsOf(o).has(i)
}

// Price is the sum of base prices over the distinct kinds of the order.
func (o Order) Price() int {
	return kindsOf(o).price()
}

// Extras returns the kinds between the mandatory head and Sauce.
func (o Order) Extras() []Ingredient {
	if len(o) < 3 {
		return nil
	}
	return append([]Ingredient(nil), o[2:len(o)-1]...)
}

func (o Order) String() string {
	names := make([]string, len(o))
	for i, k := range o {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// OrderGenerator draws randomized orders whose size grows with the day.
type OrderGenerator struct {
	rng *rand.Rand
	cfg Config
}

// NewOrderGenerator creates a generator drawing from rng.
func NewOrderGenerator(cfg Config, rng *rand.Rand) *OrderGenerator {
	if rng == nil {
		panic("NewOrderGenerator: rng must not be nil")
	}
	return &OrderGenerator{rng: rng, cfg: cfg}
}

// Generate returns a new order for the given day.
//
// requested = uniform in [1, MaxExtras(day)]; each of the requested draws picks
// one extra uniformly and keeps it only if the order does not have it yet, so
// duplicate draws shrink the order.
func (g *OrderGenerator) Generate(day int) Order {
	order := Order{Pita, Meat}
	requested := g.rng.Intn(g.cfg.MaxExtras(day)) + 1

	for i := 0; i < requested; i++ {
		extra := orderExtras[g.rng.Intn(len(orderExtras))]
		if !order.Contains(extra) {
			order = append(order, extra)
		}
	}
	return append(order, Sauce)
}
