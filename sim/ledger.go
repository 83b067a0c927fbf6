// Tracks the session's running money and the current day's statistics.

package sim

import (
	"fmt"
	"io"
)

// DayStats aggregates one day of service. Every field only grows during the
// day and is reset when the next day starts.
type DayStats struct {
	DayNumber     int `json:"day"`
	ServedCount   int `json:"served"`
	FailedCount   int `json:"failed"`
	MoneyEarned   int `json:"earned"`
	Tips          int `json:"tips"`
	PerfectOrders int `json:"perfect"`
}

// Print writes the end-of-day receipt.
func (s DayStats) Print(w io.Writer) {
	fmt.Fprintf(w, "=== Day %d Report ===\n", s.DayNumber)
	fmt.Fprintf(w, "Total Earnings : $%d\n", s.MoneyEarned)
	fmt.Fprintf(w, "Served         : %d\n", s.ServedCount)
	fmt.Fprintf(w, "Failed         : %d\n", s.FailedCount)
	fmt.Fprintf(w, "Perfect        : %d\n", s.PerfectOrders)
	fmt.Fprintf(w, "Tips           : $%d\n", s.Tips)
}

// EconomyLedger is the single owner of money and day statistics.
type EconomyLedger struct {
	money int
	day   DayStats
}

// NewEconomyLedger returns a ledger with no money and day 0 stats.
func NewEconomyLedger() *EconomyLedger {
	return &EconomyLedger{}
}

// ResetSession zeroes the running money. Used only for a brand new game.
func (l *EconomyLedger) ResetSession() {
	l.money = 0
	l.day = DayStats{}
}

// StartDay zeroes the day statistics; money carries over.
func (l *EconomyLedger) StartDay(day int) {
	l.day = DayStats{DayNumber: day}
}

// RecordServe books a successful serve. earnings already includes tip.
func (l *EconomyLedger) RecordServe(earnings, tip int, perfect bool) {
	if earnings < 0 || tip < 0 {
		panic(fmt.Sprintf("RecordServe: negative amounts earnings=%d tip=%d", earnings, tip))
	}
	l.money += earnings
	l.day.ServedCount++
	l.day.MoneyEarned += earnings
	l.day.Tips += tip
	if perfect {
		l.day.PerfectOrders++
	}
}

// RecordFailure books a wrong serve or a customer who gave up.
func (l *EconomyLedger) RecordFailure() {
	l.day.FailedCount++
}

// Money returns the running total across days.
func (l *EconomyLedger) Money() int {
	return l.money
}

// Stats returns a copy of the current day's statistics.
func (l *EconomyLedger) Stats() DayStats {
	return l.day
}
