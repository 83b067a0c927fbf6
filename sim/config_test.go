package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero day duration", func(c *Config) { c.DayDurationSeconds = 0 }},
		{"zero step", func(c *Config) { c.StepIntervalMs = 0 }},
		{"zero patience", func(c *Config) { c.MaxPatience = 0 }},
		{"negative decay", func(c *Config) { c.PatienceDecayPerDay = -1 }},
		{"zero spawn floor", func(c *Config) { c.SpawnIntervalFloorMs = 0 }},
		{"negative backoff", func(c *Config) { c.CapacityBackoffMs = -5 }},
		{"empty queue", func(c *Config) { c.MaxQueueLength = 0 }},
		{"no meat", func(c *Config) { c.MeatStockCap = 0 }},
		{"zero tip divisor", func(c *Config) { c.TipDivisor = 0 }},
		{"no extras", func(c *Config) { c.ExtrasLate = 0 }},
		{"zero review timeout", func(c *Config) { c.ReviewTimeoutMs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_SpawnInterval(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		day  int
		want time.Duration
	}{
		{1, 4500 * time.Millisecond},
		{3, 3500 * time.Millisecond},
		{6, 2000 * time.Millisecond},
		{7, 2000 * time.Millisecond},
		// Floor reached: max(2000, 5000-5000)
		{10, 2000 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.SpawnInterval(tt.day), "day %d", tt.day)
	}
}

func TestConfig_PatienceDecayAndExtras(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 0.6, cfg.PatienceDecay(1), 1e-9)
	assert.InDelta(t, 1.5, cfg.PatienceDecay(10), 1e-9)

	assert.Equal(t, 2, cfg.MaxExtras(1))
	assert.Equal(t, 2, cfg.MaxExtras(3))
	assert.Equal(t, 3, cfg.MaxExtras(4))
	assert.Equal(t, 100*time.Millisecond, cfg.StepInterval())
}
