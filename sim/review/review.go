// Package review produces the short end-of-day critic review.
//
// The core only sees the Reviewer interface. Every failure path maps to one of
// the fallback strings below, so Review never returns an error.
// This package has no dependencies on sim/ so the core can import it.
package review

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	// Loading is shown while a review request is in flight.
	Loading = "Typing review..."
	// FallbackNoCredentials is returned without a network attempt when no API key is configured.
	FallbackNoCredentials = "The food critic is taking a day off..."
	// FallbackRequestFailed is returned when the request errors or times out.
	FallbackRequestFailed = "The review got lost somewhere on the network..."
	// FallbackEmpty is returned when the model answers with no text.
	FallbackEmpty = "The review failed to load..."
)

// Request is the day snapshot sent to the critic.
type Request struct {
	DayNumber     int
	ServedCount   int
	FailedCount   int
	MoneyEarned   int
	PerfectOrders int
}

// Reviewer turns a day snapshot into review text. Implementations must not
// return an empty string and must honour ctx cancellation.
type Reviewer interface {
	Review(ctx context.Context, req Request) string
}

// Generator is the raw text-generation call behind a ModelReviewer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Offline is the Reviewer used without credentials.
type Offline struct{}

// Review returns FallbackNoCredentials.
func (Offline) Review(context.Context, Request) string {
	return FallbackNoCredentials
}

// ModelReviewer prompts a Generator and maps its failures to fallbacks.
type ModelReviewer struct {
	gen Generator
}

// NewModelReviewer wraps gen. A nil gen behaves like Offline.
func NewModelReviewer(gen Generator) *ModelReviewer {
	return &ModelReviewer{gen: gen}
}

// Review asks the generator for a review of req.
func (r *ModelReviewer) Review(ctx context.Context, req Request) string {
	if r == nil || r.gen == nil {
		logrus.Warn("review: no generator configured")
		return FallbackNoCredentials
	}
	text, err := r.gen.Generate(ctx, Prompt(req))
	if err != nil {
		logrus.Warnf("review: generation failed for day %d: %v", req.DayNumber, err)
		return FallbackRequestFailed
	}
	if text == "" {
		return FallbackEmpty
	}
	return text
}
