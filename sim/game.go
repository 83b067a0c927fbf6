// sim/game.go
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tasty-shawarma/shawarma-sim/sim/review"
	"github.com/tasty-shawarma/shawarma-sim/sim/trace"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseDayEnd
	// PhaseGameOver is reserved. No transition enters it.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseDayEnd:
		return "day_end"
	case PhaseGameOver:
		return "game_over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ScoreEvent is the transient earnings popup of the last successful serve.
type ScoreEvent struct {
	ID     uint64
	Amount int
	At     time.Time
}

// DaySummary is the receipt shown at DayEnd.
type DaySummary struct {
	Stats         DayStats
	Money         int    // running total when the day closed
	Review        string // review.Loading until the critic answers
	ReviewPending bool
}

// Snapshot is a read-only copy of everything a presentation layer shows.
type Snapshot struct {
	Phase     Phase
	Day       int
	Money     int
	TimeLeft  int // seconds
	Customers []Customer
	Wrap      []Ingredient
	MeatStock int
	LastScore *ScoreEvent
	Summary   *DaySummary // nil until the first day closes; cleared when a day starts
}

// Option configures a Game.
type Option func(*Game)

// WithReviewer sets the end-of-day critic. Defaults to review.Offline.
func WithReviewer(r review.Reviewer) Option {
	return func(g *Game) {
		if r != nil {
			g.reviewer = r
		}
	}
}

// WithTrace records every serve and timeout into st.
func WithTrace(st *trace.SessionTrace) Option {
	return func(g *Game) {
		g.trace = st
	}
}

// WithDayClosedHook calls fn, outside the game lock, once a day's review has
// resolved.
func WithDayClosedHook(fn func(DaySummary)) Option {
	return func(g *Game) {
		g.onDayClosed = fn
	}
}

// Game is the phase controller: it owns the queue, the wrap, the ledger and the
// GameClock, and serializes every mutation behind one lock. All commands are
// safe in any phase and do nothing outside PhasePlaying.
type Game struct {
	mu sync.Mutex

	cfg       Config
	clk       Clock
	rng       *PartitionedRNG
	gameClock *GameClock
	queue     *CustomerQueue
	wrap      *WrapAssembly
	match     MatchEngine
	ledger    *EconomyLedger

	reviewer    review.Reviewer
	trace       *trace.SessionTrace
	onDayClosed func(DaySummary)

	phase     Phase
	day       int
	timeLeft  int
	epoch     uint64 // bumped on every day start; stale reviews are dropped
	scoreSeq  uint64
	lastScore *ScoreEvent
	summary   *DaySummary

	pendingReviews int
	reviewsDone    *sync.Cond // signalled with mu held when pendingReviews drops to 0
}

// NewGame creates a session in PhaseMenu.
func NewGame(cfg Config, clk Clock, key SimulationKey, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clk == nil {
		clk = RealClock{}
	}
	rng := NewPartitionedRNG(key)
	orders := NewOrderGenerator(cfg, rng.ForSubsystem(SubsystemOrders))
	g := &Game{
		cfg:       cfg,
		clk:       clk,
		rng:       rng,
		gameClock: NewGameClock(cfg.StepInterval(), time.Second),
		queue:     NewCustomerQueue(cfg, orders, rng.ForSubsystem(SubsystemCustomers)),
		wrap:      NewWrapAssembly(cfg.MeatStockCap),
		match:     NewMatchEngine(cfg),
		ledger:    NewEconomyLedger(),
		reviewer:  review.Offline{},
		phase:     PhaseMenu,
		day:       1,
		timeLeft:  cfg.DayDurationSeconds,
	}
	g.reviewsDone = sync.NewCond(&g.mu)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// RNG returns the session's partitioned RNG so drivers can draw from their
// own subsystem. Callers must not use it concurrently with the game.
func (g *Game) RNG() *PartitionedRNG {
	return g.rng
}

// === Commands ===

// StartDay opens the shop: from Menu it starts a fresh session on day 1, from
// DayEnd it starts the next day. Returns false when nothing happened.
func (g *Game) StartDay() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.phase {
	case PhaseMenu:
		g.ledger.ResetSession()
		g.beginDay(1)
	case PhaseDayEnd:
		g.beginDay(g.day + 1)
	default:
		logrus.Debugf("StartDay ignored in phase %s", g.phase)
		return false
	}
	return true
}

// Restart abandons the current session and starts day 1 with no money.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gameClock.Stop()
	g.ledger.ResetSession()
	g.beginDay(1)
}

// CutMeat adds a portion of meat to the stock.
func (g *Game) CutMeat() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return false
	}
	ok := g.wrap.CutMeat()
	logrus.Debugf("CutMeat: stock=%d changed=%v", g.wrap.MeatStock(), ok)
	return ok
}

// AddIngredient puts kind on the wrap.
func (g *Game) AddIngredient(kind Ingredient) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return false
	}
	ok := g.wrap.AddIngredient(kind)
	logrus.Debugf("AddIngredient(%s): added=%v wrap=%d", kind, ok, g.wrap.Len())
	return ok
}

// TrashWrap throws the wrap away.
func (g *Game) TrashWrap() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return false
	}
	return g.wrap.Trash() > 0
}

// ServeWrap hands the wrap to the front customer.
func (g *Game) ServeWrap() ServeOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return ServeOutcome{Result: ServeSkipped}
	}
	now := g.clk.Now()
	out := g.match.Serve(g.wrap, g.queue, g.ledger)
	if out.Result == ServeSkipped {
		return out
	}
	if out.Result == ServeMatched {
		g.scoreSeq++
		g.lastScore = &ScoreEvent{ID: g.scoreSeq, Amount: out.Earnings, At: now}
	}
	if g.trace.Enabled() {
		g.trace.RecordServe(trace.ServeRecord{
			CustomerID: out.CustomerID,
			Day:        g.day,
			At:         now,
			Success:    out.Result == ServeMatched,
			Patience:   out.Patience,
			Earnings:   out.Earnings,
			Tip:        out.Tip,
			Perfect:    out.Perfect,
		})
	}
	logrus.Debugf("Serve %s: %s earnings=%d tip=%d", out.CustomerID, out.Result, out.Earnings, out.Tip)
	return out
}

// === Clock ===

// Advance processes every schedule firing due at now. It may be called at any
// rate; outside PhasePlaying it does nothing.
func (g *Game) Advance(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return
	}
	for _, ev := range g.gameClock.Advance(now) {
		// A countdown that closed the day cancels the rest of the batch.
		if !g.gameClock.Running() {
			break
		}
		logrus.Tracef("[%s] Executing %T", ev.Timestamp().Format(time.StampMilli), ev)
		ev.Execute(g)
	}
}

// Run polls Advance every poll interval until ctx is done.
func (g *Game) Run(ctx context.Context, poll time.Duration) {
	if poll <= 0 {
		poll = 16 * time.Millisecond
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Advance(g.clk.Now())
		}
	}
}

// WaitForReviews blocks until every in-flight review request has resolved and
// its day-closed hook has returned. It may be called from any goroutine, even
// while a day is about to close.
func (g *Game) WaitForReviews() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for g.pendingReviews > 0 {
		g.reviewsDone.Wait()
	}
}

// === Reads ===

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Snapshot returns a copy of the read surface.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.expireScore(g.clk.Now())
	snap := Snapshot{
		Phase:     g.phase,
		Day:       g.day,
		Money:     g.ledger.Money(),
		TimeLeft:  g.timeLeft,
		Customers: g.queue.Customers(),
		Wrap:      g.wrap.Contents(),
		MeatStock: g.wrap.MeatStock(),
	}
	if g.lastScore != nil {
		sc := *g.lastScore
		snap.LastScore = &sc
	}
	if g.summary != nil {
		sum := *g.summary
		snap.Summary = &sum
	}
	return snap
}

// === Internals; callers hold g.mu ===

func (g *Game) beginDay(day int) {
	now := g.clk.Now()
	g.epoch++
	g.day = day
	g.phase = PhasePlaying
	g.timeLeft = g.cfg.DayDurationSeconds
	g.queue.Reset(now)
	g.wrap.Reset()
	g.ledger.StartDay(day)
	g.lastScore = nil
	g.summary = nil
	g.queue.SpawnFor(day)
	g.gameClock.Start(now)
	logrus.Infof("Day %d opened (money=%d)", day, g.ledger.Money())
}

func (g *Game) step(now time.Time) {
	queued := g.queue.Len()
	for _, c := range g.queue.Decay(g.day) {
		g.ledger.RecordFailure()
		if g.trace.Enabled() {
			g.trace.RecordTimeout(trace.TimeoutRecord{CustomerID: c.ID, Day: g.day, At: now})
		}
		logrus.Debugf("Customer %s ran out of patience", c.ID)
	}
	g.queue.MaybeSpawn(now, g.day, queued)
	g.expireScore(now)
}

// expireScore clears the score event once it has been shown long enough. It
// runs on every step and on every read, so the event also expires after the
// day has closed.
func (g *Game) expireScore(now time.Time) {
	if g.lastScore != nil && now.Sub(g.lastScore.At) >= g.cfg.ScoreDisplay() {
		g.lastScore = nil
	}
}

func (g *Game) countdown(now time.Time) {
	g.timeLeft--
	if g.timeLeft > 0 {
		return
	}
	g.timeLeft = 0
	g.endDay(now)
}

func (g *Game) endDay(now time.Time) {
	g.gameClock.Stop()
	g.phase = PhaseDayEnd
	stats := g.ledger.Stats()
	g.summary = &DaySummary{
		Stats:         stats,
		Money:         g.ledger.Money(),
		Review:        review.Loading,
		ReviewPending: true,
	}
	logrus.Infof("Day %d closed at %s: served=%d failed=%d earned=%d",
		stats.DayNumber, now.Format(time.StampMilli), stats.ServedCount, stats.FailedCount, stats.MoneyEarned)
	g.requestReview(g.epoch, *g.summary)
}

// requestReview asks the critic in the background. The answer fills the
// summary only if no new day has started since.
func (g *Game) requestReview(epoch uint64, closed DaySummary) {
	req := review.Request{
		DayNumber:     closed.Stats.DayNumber,
		ServedCount:   closed.Stats.ServedCount,
		FailedCount:   closed.Stats.FailedCount,
		MoneyEarned:   closed.Stats.MoneyEarned,
		PerfectOrders: closed.Stats.PerfectOrders,
	}
	reviewer, timeout := g.reviewer, g.cfg.ReviewTimeout()

	g.pendingReviews++
	go func() {
		text := safeReview(reviewer, timeout, req)

		g.mu.Lock()
		if g.epoch == epoch && g.summary != nil {
			g.summary.Review = text
			g.summary.ReviewPending = false
		}
		hook := g.onDayClosed
		g.mu.Unlock()

		closed.Review = text
		closed.ReviewPending = false
		if hook != nil {
			hook(closed)
		}

		g.mu.Lock()
		g.pendingReviews--
		if g.pendingReviews == 0 {
			g.reviewsDone.Broadcast()
		}
		g.mu.Unlock()
	}()
}

func safeReview(r review.Reviewer, timeout time.Duration, req review.Request) (text string) {
	defer func() {
		if p := recover(); p != nil {
			logrus.Warnf("review: reviewer panicked: %v", p)
			text = review.FallbackRequestFailed
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	text = r.Review(ctx, req)
	if text == "" {
		text = review.FallbackEmpty
	}
	return text
}
