package sim

import "math"

// ServeResult classifies what a serve did.
type ServeResult string

const (
	ServeSkipped    ServeResult = "skipped"    // empty queue or empty wrap
	ServeMatched    ServeResult = "matched"    // kinds matched, customer paid
	ServeMismatched ServeResult = "mismatched" // customer left unhappy
)

// ServeOutcome describes one serve. Earnings includes Tip.
type ServeOutcome struct {
	Result     ServeResult
	CustomerID string
	Patience   float64 // at serve time
	Earnings   int
	Tip        int
	Perfect    bool
}

// Matches reports whether wrap and order hold the same set of kinds.
// Counts do not matter: two Meat match an order for one.
func Matches(wrap []Ingredient, order Order) bool {
	return kindsOf(wrap) == kindsOf(order)
}

// MatchEngine judges the front customer's order against the wrap.
type MatchEngine struct {
	cfg Config
}

// NewMatchEngine creates a MatchEngine using cfg's tip and perfect rules.
func NewMatchEngine(cfg Config) MatchEngine {
	return MatchEngine{cfg: cfg}
}

// Evaluate computes the outcome of handing wrap to c without mutating anything.
func (m MatchEngine) Evaluate(wrap []Ingredient, c *Customer) ServeOutcome {
	if c == nil || len(wrap) == 0 {
		return ServeOutcome{Result: ServeSkipped}
	}
	out := ServeOutcome{CustomerID: c.ID, Patience: c.Patience}
	if !Matches(wrap, c.Order) {
		out.Result = ServeMismatched
		return out
	}
	out.Result = ServeMatched
	out.Tip = int(math.Floor(c.Patience / m.cfg.TipDivisor))
	out.Earnings = c.Order.Price() + out.Tip
	out.Perfect = c.Patience > m.cfg.PerfectPatience
	return out
}

// Serve hands the wrap to the front customer, books the result in the ledger,
// removes the customer and clears the wrap. Ingredients are consumed whether
// or not the order matched.
func (m MatchEngine) Serve(wrap *WrapAssembly, queue *CustomerQueue, ledger *EconomyLedger) ServeOutcome {
	out := m.Evaluate(wrap.contents, queue.Front())
	switch out.Result {
	case ServeSkipped:
		return out
	case ServeMatched:
		ledger.RecordServe(out.Earnings, out.Tip, out.Perfect)
	case ServeMismatched:
		ledger.RecordFailure()
	}
	queue.RemoveFront()
	wrap.Trash()
	return out
}
