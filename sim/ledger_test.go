package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEconomyLedger_RecordServe_AccumulatesDayAndMoney(t *testing.T) {
	// GIVEN a ledger on day 1
	l := NewEconomyLedger()
	l.StartDay(1)

	// WHEN two serves are booked, one perfect
	l.RecordServe(41, 9, true)
	l.RecordServe(30, 2, false)

	// THEN money and stats add up
	assert.Equal(t, 71, l.Money())
	assert.Equal(t, DayStats{DayNumber: 1, ServedCount: 2, MoneyEarned: 71, Tips: 11, PerfectOrders: 1}, l.Stats())
}

func TestEconomyLedger_StartDay_KeepsMoney(t *testing.T) {
	l := NewEconomyLedger()
	l.StartDay(1)
	l.RecordServe(41, 9, true)
	l.RecordFailure()

	l.StartDay(2)

	assert.Equal(t, 41, l.Money())
	assert.Equal(t, DayStats{DayNumber: 2}, l.Stats())
}

func TestEconomyLedger_ResetSession(t *testing.T) {
	l := NewEconomyLedger()
	l.StartDay(3)
	l.RecordServe(10, 0, false)
	l.ResetSession()
	assert.Equal(t, 0, l.Money())
	assert.Equal(t, DayStats{}, l.Stats())
}

func TestEconomyLedger_RecordServe_RejectsNegative(t *testing.T) {
	l := NewEconomyLedger()
	assert.Panics(t, func() { l.RecordServe(-1, 0, false) })
}

func TestDayStats_Print(t *testing.T) {
	var buf bytes.Buffer
	DayStats{DayNumber: 2, ServedCount: 3, FailedCount: 1, MoneyEarned: 120, Tips: 20, PerfectOrders: 2}.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Day 2 Report")
	assert.Contains(t, out, "$120")
	assert.Contains(t, out, "Failed         : 1")
}
