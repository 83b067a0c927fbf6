package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tasty-shawarma/shawarma-sim/sim"
	"github.com/tasty-shawarma/shawarma-sim/sim/notify"
	"github.com/tasty-shawarma/shawarma-sim/sim/review"
	"github.com/tasty-shawarma/shawarma-sim/sim/trace"
)

var (
	// CLI flags for the session
	seed       int64  // Seed for order and customer generation
	days       int    // Number of days to play
	logLevel   string // Log verbosity level
	configPath string // Optional YAML file overlaying the default balance
	realtime   bool   // Play against the wall clock instead of a virtual one

	// CLI flags for the autopilot chef
	chefAccuracy float64 // Probability of never rushing an incomplete wrap
	chefThinkMs  int     // Milliseconds between two chef actions

	// CLI flags for collaborators
	reviewModel   string // Gemini model name
	reviewTimeout int    // Review deadline in milliseconds (0 keeps the config value)
	natsURL       string // NATS server; empty disables publishing
	natsSubject   string // Subject day summaries are published on
	traceLevel    string // Outcome trace level: none, outcomes
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "shawarma-sim",
	Short: "Real-time shawarma shop simulation",
}

// runCmd plays a session with the autopilot chef
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a shop session with the autopilot chef",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if days < 1 {
			logrus.Fatalf("--days must be >= 1, got %d", days)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg, err := loadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if cmd.Flags().Changed("review-timeout") {
			cfg.ReviewTimeoutMs = reviewTimeout
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var publisher notify.Publisher = notify.Discard{}
		if natsURL != "" {
			p, err := notify.NewNATSPublisher(natsURL, natsSubject)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Publishing day summaries to %s on %q", natsURL, p.Subject())
			publisher = p
		}
		defer publisher.Close()

		var st *trace.SessionTrace
		if traceLevel != string(trace.TraceLevelNone) {
			st = trace.NewSessionTrace(trace.TraceLevel(traceLevel))
		}

		var clk sim.Clock
		if realtime {
			clk = sim.RealClock{}
		} else {
			clk = sim.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		}

		g, err := sim.NewGame(cfg, clk, sim.NewSimulationKey(seed),
			sim.WithReviewer(review.New(ctx, apiKeyFromEnv(), reviewModel)),
			sim.WithTrace(st),
			sim.WithDayClosedHook(notify.Hook(ctx, publisher)),
		)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting session: seed=%d days=%d realtime=%v chef-accuracy=%.2f",
			seed, days, realtime, chefAccuracy)
		startTime := time.Now()

		s := session{
			Game:      g,
			Days:      days,
			ChefThink: time.Duration(chefThinkMs) * time.Millisecond,
			Accuracy:  chefAccuracy,
			Out:       os.Stdout,
		}
		if realtime {
			s.PlayRealtime(ctx)
		} else {
			s.PlayVirtual(clk.(*sim.ManualClock))
		}
		s.PrintTotals(st, time.Since(startTime))

		logrus.Info("Session complete.")
	},
}

// apiKeyFromEnv returns the review API key, preferring GEMINI_API_KEY.
func apiKeyFromEnv() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("API_KEY")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for order and customer generation")
	runCmd.Flags().IntVar(&days, "days", 3, "Number of days to play")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file overlaying the default balance")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Play against the wall clock (a day lasts its full duration)")

	// Autopilot
	runCmd.Flags().Float64Var(&chefAccuracy, "chef-accuracy", 0.9, "Probability the chef finishes a wrap before serving")
	runCmd.Flags().IntVar(&chefThinkMs, "chef-think", 400, "Milliseconds between chef actions")

	// Collaborators
	runCmd.Flags().StringVar(&reviewModel, "review-model", review.DefaultModel, "Gemini model used for end-of-day reviews")
	runCmd.Flags().IntVar(&reviewTimeout, "review-timeout", 0, "Review deadline in milliseconds (overrides the config)")
	runCmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL for day summaries (disabled when empty)")
	runCmd.Flags().StringVar(&natsSubject, "nats-subject", notify.DefaultSubject, "NATS subject for day summaries")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Outcome trace level (none, outcomes)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(defaultsCmd)
}
