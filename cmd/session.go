package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tasty-shawarma/shawarma-sim/sim"
	"github.com/tasty-shawarma/shawarma-sim/sim/chef"
	"github.com/tasty-shawarma/shawarma-sim/sim/trace"
)

// pollInterval is the redraw-rate signal that drives Game.Advance.
const pollInterval = 16 * time.Millisecond

// session plays consecutive days with the autopilot chef.
type session struct {
	Game      *sim.Game
	Days      int
	ChefThink time.Duration
	Accuracy  float64
	Out       io.Writer

	summaries []sim.DaySummary
}

func (s *session) newChef() *chef.Chef {
	return chef.New(s.Game.RNG().ForSubsystem(sim.SubsystemChef), s.Accuracy)
}

func (s *session) think() time.Duration {
	if s.ChefThink <= 0 {
		return pollInterval
	}
	return s.ChefThink
}

// PlayVirtual runs every day against clk, advancing it in fixed polls.
// A 60s day takes milliseconds of wall time.
func (s *session) PlayVirtual(clk *sim.ManualClock) {
	c := s.newChef()
	for d := 0; d < s.Days; d++ {
		if !s.Game.StartDay() {
			logrus.Warnf("could not start day %d from phase %s", d+1, s.Game.Phase())
			return
		}
		nextAction := clk.Now().Add(s.think())
		for s.Game.Phase() == sim.PhasePlaying {
			now := clk.Advance(pollInterval)
			s.Game.Advance(now)
			if !now.Before(nextAction) {
				c.Act(s.Game)
				nextAction = now.Add(s.think())
			}
		}
		s.closeDay()
	}
}

// PlayRealtime runs every day against the wall clock, stopping early when ctx
// is cancelled.
func (s *session) PlayRealtime(ctx context.Context) {
	c := s.newChef()
	for d := 0; d < s.Days; d++ {
		if ctx.Err() != nil || !s.Game.StartDay() {
			return
		}
		dayCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			s.Game.Run(dayCtx, pollInterval)
		}()

		ticker := time.NewTicker(s.think())
	play:
		for {
			select {
			case <-ctx.Done():
				break play
			case <-ticker.C:
				if s.Game.Phase() != sim.PhasePlaying {
					break play
				}
				c.Act(s.Game)
			}
		}
		ticker.Stop()
		cancel()
		<-done
		if s.Game.Phase() != sim.PhaseDayEnd {
			return
		}
		s.closeDay()
	}
}

// closeDay waits for the critic and prints the receipt.
func (s *session) closeDay() {
	s.Game.WaitForReviews()
	summary := s.Game.Snapshot().Summary
	if summary == nil {
		return
	}
	s.summaries = append(s.summaries, *summary)
	summary.Stats.Print(s.Out)
	fmt.Fprintf(s.Out, "Balance        : $%d\n", summary.Money)
	fmt.Fprintf(s.Out, "Review         : %s\n\n", summary.Review)
}

// Summaries returns the receipts of every closed day, oldest first.
func (s *session) Summaries() []sim.DaySummary {
	return s.summaries
}

// PrintTotals writes the session totals and, when tracing, the outcome summary.
func (s *session) PrintTotals(st *trace.SessionTrace, elapsed time.Duration) {
	served, failed, perfect := 0, 0, 0
	for _, d := range s.summaries {
		served += d.Stats.ServedCount
		failed += d.Stats.FailedCount
		perfect += d.Stats.PerfectOrders
	}
	fmt.Fprintln(s.Out, "=== Session Totals ===")
	fmt.Fprintf(s.Out, "Days Played    : %d\n", len(s.summaries))
	fmt.Fprintf(s.Out, "Served         : %d\n", served)
	fmt.Fprintf(s.Out, "Failed         : %d\n", failed)
	fmt.Fprintf(s.Out, "Perfect        : %d\n", perfect)
	fmt.Fprintf(s.Out, "Money          : $%d\n", s.Game.Snapshot().Money)
	fmt.Fprintf(s.Out, "Wall Time      : %s\n", elapsed.Round(time.Millisecond))

	if !st.Enabled() {
		return
	}
	ts := trace.Summarize(st)
	fmt.Fprintln(s.Out, "=== Trace Summary ===")
	fmt.Fprintf(s.Out, "Serves         : %d (matched %d, mismatched %d)\n", ts.TotalServes, ts.SuccessCount, ts.MismatchCount)
	fmt.Fprintf(s.Out, "Timeouts       : %d\n", ts.TimeoutCount)
	fmt.Fprintf(s.Out, "Mean Patience  : %.2f\n", ts.MeanServePatience)
	fmt.Fprintf(s.Out, "Earnings/Tips  : $%d / $%d\n", ts.TotalEarnings, ts.TotalTips)
}
