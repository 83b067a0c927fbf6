package sim

import "time"

// Event defines the interface for every scheduled firing of the GameClock.
// Each event has a Timestamp and an Execute method that advances game state
// when invoked. Execute runs with the Game lock held.
type Event interface {
	Timestamp() time.Time
	Execute(*Game)
}

// StepEvent is one simulation step: patience decay, the spawn check and
// expiry of the transient score event.
type StepEvent struct {
	time time.Time
}

// Timestamp returns the scheduled time of the StepEvent.
func (e *StepEvent) Timestamp() time.Time {
	return e.time
}

// Execute runs the simulation step.
func (e *StepEvent) Execute(g *Game) {
	g.step(e.time)
}

// CountdownEvent is one 1Hz tick of the day timer.
type CountdownEvent struct {
	time time.Time
}

// Timestamp returns the scheduled time of the CountdownEvent.
func (e *CountdownEvent) Timestamp() time.Time {
	return e.time
}

// Execute decrements the day timer, closing the day at zero.
func (e *CountdownEvent) Execute(g *Game) {
	g.countdown(e.time)
}
