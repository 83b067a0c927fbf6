package sim

import (
	"fmt"
	"time"
)

// Config groups every tuning constant of a shop session.
// DefaultConfig reproduces the reference game balance; the CLI can overlay a
// YAML defaults file on top of it.
type Config struct {
	DayDurationSeconds int `yaml:"day_duration_seconds"` // countdown length of one day
	StepIntervalMs     int `yaml:"step_interval_ms"`     // simulation step cadence

	MaxPatience         float64 `yaml:"max_patience"`           // patience of a fresh customer
	PatienceDecayBase   float64 `yaml:"patience_decay_base"`    // patience lost per step on day 0
	PatienceDecayPerDay float64 `yaml:"patience_decay_per_day"` // extra patience lost per step per day

	SpawnIntervalBaseMs   int `yaml:"spawn_interval_base_ms"`    // spawn interval before day scaling
	SpawnIntervalPerDayMs int `yaml:"spawn_interval_per_day_ms"` // interval shrink per day
	SpawnIntervalFloorMs  int `yaml:"spawn_interval_floor_ms"`   // interval never drops below this
	CapacityBackoffMs     int `yaml:"capacity_backoff_ms"`       // retry delay when the queue is full
	MaxQueueLength        int `yaml:"max_queue_length"`          // spawns are skipped at this length

	MeatStockCap int `yaml:"meat_stock_cap"`

	PerfectPatience float64 `yaml:"perfect_patience"` // serve above this counts as perfect
	TipDivisor      float64 `yaml:"tip_divisor"`      // tip = floor(patience / divisor)

	ExtrasEarly        int `yaml:"extras_early"`          // max extras up to ExtrasLateAfterDay
	ExtrasLate         int `yaml:"extras_late"`           // max extras afterwards
	ExtrasLateAfterDay int `yaml:"extras_late_after_day"` // first day using ExtrasLate is this + 1

	ScoreDisplayMs  int `yaml:"score_display_ms"`  // lifetime of the last-serve score event
	ReviewTimeoutMs int `yaml:"review_timeout_ms"` // deadline for the review collaborator
}

// DefaultConfig returns the reference balance.
func DefaultConfig() Config {
	return Config{
		DayDurationSeconds:    60,
		StepIntervalMs:        100,
		MaxPatience:           100,
		PatienceDecayBase:     0.5,
		PatienceDecayPerDay:   0.1,
		SpawnIntervalBaseMs:   5000,
		SpawnIntervalPerDayMs: 500,
		SpawnIntervalFloorMs:  2000,
		CapacityBackoffMs:     2000,
		MaxQueueLength:        4,
		MeatStockCap:          5,
		PerfectPatience:       80,
		TipDivisor:            10,
		ExtrasEarly:           2,
		ExtrasLate:            3,
		ExtrasLateAfterDay:    3,
		ScoreDisplayMs:        1000,
		ReviewTimeoutMs:       15000,
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	switch {
	case c.DayDurationSeconds <= 0:
		return fmt.Errorf("day_duration_seconds must be > 0, got %d", c.DayDurationSeconds)
	case c.StepIntervalMs <= 0:
		return fmt.Errorf("step_interval_ms must be > 0, got %d", c.StepIntervalMs)
	case c.MaxPatience <= 0:
		return fmt.Errorf("max_patience must be > 0, got %v", c.MaxPatience)
	case c.PatienceDecayBase < 0 || c.PatienceDecayPerDay < 0:
		return fmt.Errorf("patience decay must be >= 0, got base=%v per_day=%v", c.PatienceDecayBase, c.PatienceDecayPerDay)
	case c.SpawnIntervalFloorMs <= 0 || c.SpawnIntervalBaseMs <= 0:
		return fmt.Errorf("spawn intervals must be > 0, got base=%d floor=%d", c.SpawnIntervalBaseMs, c.SpawnIntervalFloorMs)
	case c.CapacityBackoffMs < 0:
		return fmt.Errorf("capacity_backoff_ms must be >= 0, got %d", c.CapacityBackoffMs)
	case c.MaxQueueLength < 1:
		return fmt.Errorf("max_queue_length must be >= 1, got %d", c.MaxQueueLength)
	case c.MeatStockCap < 1:
		return fmt.Errorf("meat_stock_cap must be >= 1, got %d", c.MeatStockCap)
	case c.TipDivisor <= 0:
		return fmt.Errorf("tip_divisor must be > 0, got %v", c.TipDivisor)
	case c.ExtrasEarly < 1 || c.ExtrasLate < 1:
		return fmt.Errorf("extras caps must be >= 1, got early=%d late=%d", c.ExtrasEarly, c.ExtrasLate)
	case c.ReviewTimeoutMs <= 0:
		return fmt.Errorf("review_timeout_ms must be > 0, got %d", c.ReviewTimeoutMs)
	}
	return nil
}

// StepInterval returns the simulation step cadence.
func (c Config) StepInterval() time.Duration {
	return time.Duration(c.StepIntervalMs) * time.Millisecond
}

// SpawnInterval returns max(floor, base - day*perDay) for the given day.
func (c Config) SpawnInterval(day int) time.Duration {
	ms := c.SpawnIntervalBaseMs - day*c.SpawnIntervalPerDayMs
	if ms < c.SpawnIntervalFloorMs {
		ms = c.SpawnIntervalFloorMs
	}
	return time.Duration(ms) * time.Millisecond
}

// PatienceDecay returns the patience lost by every customer on one step.
func (c Config) PatienceDecay(day int) float64 {
	return c.PatienceDecayBase + float64(day)*c.PatienceDecayPerDay
}

// MaxExtras returns the upper bound of extras requested on the given day.
func (c Config) MaxExtras(day int) int {
	if day > c.ExtrasLateAfterDay {
		return c.ExtrasLate
	}
	return c.ExtrasEarly
}

// ScoreDisplay returns how long the last-serve score event stays visible.
func (c Config) ScoreDisplay() time.Duration {
	return time.Duration(c.ScoreDisplayMs) * time.Millisecond
}

// ReviewTimeout returns the deadline given to the review collaborator.
func (c Config) ReviewTimeout() time.Duration {
	return time.Duration(c.ReviewTimeoutMs) * time.Millisecond
}
