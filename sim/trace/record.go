// Package trace provides outcome recording for per-customer analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

import "time"

// ServeRecord captures a single serve of the front customer.
type ServeRecord struct {
	CustomerID string
	Day        int
	At         time.Time
	Success    bool
	Patience   float64 // at serve time
	Earnings   int     // includes Tip; 0 on failure
	Tip        int
	Perfect    bool
}

// TimeoutRecord captures a customer who ran out of patience.
type TimeoutRecord struct {
	CustomerID string
	Day        int
	At         time.Time
}
