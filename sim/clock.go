package sim

import (
	"container/heap"
	"sync"
	"time"
)

// Clock abstracts time for deterministic tests and headless runs.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a ManualClock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new reading.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// EventQueue implements heap.Interface and orders events by timestamp.
// Steps sort after countdown ticks due at the same instant.
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	ti, tj := eq[i].Timestamp(), eq[j].Timestamp()
	if ti.Equal(tj) {
		_, iStep := eq[i].(*StepEvent)
		_, jStep := eq[j].(*StepEvent)
		return !iStep && jStep
	}
	return ti.Before(tj)
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// GameClock owns the two schedules of a day: the simulation step and the 1Hz
// countdown. It is polled through Advance, which may be called at any rate.
//
// The step fires once accumulated time since the last step reaches the step
// interval, and the baseline then resets to the poll time, so drift is dropped
// rather than caught up. The countdown keeps a fixed 1s cadence.
type GameClock struct {
	step      time.Duration
	countdown time.Duration

	running       bool
	lastStep      time.Time
	lastCountdown time.Time
}

// NewGameClock creates a stopped clock.
func NewGameClock(step, countdown time.Duration) *GameClock {
	if step <= 0 || countdown <= 0 {
		panic("NewGameClock: intervals must be positive")
	}
	return &GameClock{step: step, countdown: countdown}
}

// Start arms both schedules from now.
func (c *GameClock) Start(now time.Time) {
	c.running = true
	c.lastStep = now
	c.lastCountdown = now
}

// Stop cancels both schedules. Events already returned by Advance must be
// dropped by the caller once Running reports false.
func (c *GameClock) Stop() {
	c.running = false
}

// Running reports whether the schedules are armed.
func (c *GameClock) Running() bool {
	return c.running
}

// Advance returns the firings due at now, oldest first.
func (c *GameClock) Advance(now time.Time) []Event {
	if !c.running {
		return nil
	}
	var eq EventQueue
	for now.Sub(c.lastCountdown) >= c.countdown {
		c.lastCountdown = c.lastCountdown.Add(c.countdown)
		heap.Push(&eq, &CountdownEvent{time: c.lastCountdown})
	}
	if now.Sub(c.lastStep) >= c.step {
		c.lastStep = now
		heap.Push(&eq, &StepEvent{time: now})
	}

	events := make([]Event, 0, len(eq))
	for eq.Len() > 0 {
		events = append(events, heap.Pop(&eq).(Event))
	}
	return events
}
