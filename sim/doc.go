// Package sim provides the core state engine of the shawarma stall simulation.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - game.go: the phase controller (Menu → Playing → DayEnd → Playing …), the
//     player commands and the read-only Snapshot
//   - clock.go: the GameClock that turns arbitrary-rate polls into 100ms
//     simulation steps and a 1Hz countdown
//   - event.go: the StepEvent and CountdownEvent firings executed by the Game
//
// # Components
//
//   - ingredient.go: the closed ingredient catalog (prices, display names)
//   - order.go: randomized order generation that grows with the day
//   - queue.go: the FIFO of waiting customers, spawn scheduling, patience decay
//   - wrap.go: the player's staging area and bounded meat stock
//   - match.go: set-based order matching and earnings
//   - ledger.go: running money and per-day statistics
//
// Sub-packages hold the collaborators:
//   - sim/review/: the end-of-day critic (Reviewer interface, Gemini client)
//   - sim/trace/: serve and timeout recording
//   - sim/chef/: an autopilot player for headless runs
//   - sim/notify/: publication of closed days
//
// # Concurrency
//
// Game serializes every command, every clock firing and every read behind one
// mutex. The only background work is the review request, which never holds the
// lock while waiting on the network.
package sim
