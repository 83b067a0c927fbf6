package trace

// TraceSummary aggregates statistics from a SessionTrace.
type TraceSummary struct {
	TotalServes       int
	SuccessCount      int
	MismatchCount     int
	TimeoutCount      int
	PerfectCount      int
	TotalEarnings     int
	TotalTips         int
	MeanServePatience float64     // over all serves, matched or not
	DayDistribution   map[int]int // day → number of outcomes (serves + timeouts)
}

// Summarize computes aggregate statistics from a SessionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SessionTrace) *TraceSummary {
	summary := &TraceSummary{
		DayDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalServes = len(st.Serves)
	totalPatience := 0.0
	for _, s := range st.Serves {
		if s.Success {
			summary.SuccessCount++
		} else {
			summary.MismatchCount++
		}
		if s.Perfect {
			summary.PerfectCount++
		}
		summary.TotalEarnings += s.Earnings
		summary.TotalTips += s.Tip
		totalPatience += s.Patience
		summary.DayDistribution[s.Day]++
	}
	if summary.TotalServes > 0 {
		summary.MeanServePatience = totalPatience / float64(summary.TotalServes)
	}

	summary.TimeoutCount = len(st.Timeouts)
	for _, to := range st.Timeouts {
		summary.DayDistribution[to.Day]++
	}

	return summary
}
