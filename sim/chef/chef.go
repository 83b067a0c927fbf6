// Package chef implements an autopilot player that drives a sim.Game through
// its public command surface.
package chef

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/tasty-shawarma/shawarma-sim/sim"
)

// Action names what the chef did on one turn.
type Action string

const (
	ActionIdle   Action = "idle"
	ActionCut    Action = "cut"
	ActionAdd    Action = "add"
	ActionServe  Action = "serve"
	ActionRushed Action = "rushed" // served an incomplete wrap
	ActionTrash  Action = "trash"
)

// Game is the subset of *sim.Game the chef needs.
type Game interface {
	Snapshot() sim.Snapshot
	CutMeat() bool
	AddIngredient(sim.Ingredient) bool
	TrashWrap() bool
	ServeWrap() sim.ServeOutcome
}

// Chef builds the front customer's order one ingredient per turn.
// With probability 1-Accuracy it serves a wrap one ingredient short.
type Chef struct {
	rng      *rand.Rand
	accuracy float64
}

// New creates a Chef. accuracy is clamped to [0, 1].
func New(rng *rand.Rand, accuracy float64) *Chef {
	if rng == nil {
		panic("chef.New: rng must not be nil")
	}
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 1 {
		accuracy = 1
	}
	return &Chef{rng: rng, accuracy: accuracy}
}

// Act performs at most one command on g.
func (c *Chef) Act(g Game) Action {
	snap := g.Snapshot()
	if snap.Phase != sim.PhasePlaying || len(snap.Customers) == 0 {
		return ActionIdle
	}
	order := snap.Customers[0].Order

	if sim.Matches(snap.Wrap, order) {
		g.ServeWrap()
		return ActionServe
	}
	for _, k := range snap.Wrap {
		if !order.Contains(k) {
			g.TrashWrap()
			return ActionTrash
		}
	}

	missing := missingKinds(snap.Wrap, order)
	if len(missing) == 1 && len(snap.Wrap) > 0 && c.rng.Float64() >= c.accuracy {
		out := g.ServeWrap()
		logrus.Debugf("chef rushed %s without %s: %s", out.CustomerID, missing[0], out.Result)
		return ActionRushed
	}

	next := missing[0]
	if next == sim.Meat && snap.MeatStock == 0 {
		g.CutMeat()
		return ActionCut
	}
	g.AddIngredient(next)
	return ActionAdd
}

// missingKinds returns the order's kinds not yet on the wrap, in order.
func missingKinds(wrap []sim.Ingredient, order sim.Order) []sim.Ingredient {
	have := make(map[sim.Ingredient]bool, len(wrap))
	for _, k := range wrap {
		have[k] = true
	}
	var out []sim.Ingredient
	for _, k := range order {
		if !have[k] {
			have[k] = true
			out = append(out, k)
		}
	}
	return out
}
