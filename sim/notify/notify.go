// Package notify publishes closed-day summaries to external subscribers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/tasty-shawarma/shawarma-sim/sim"
)

// DefaultSubject is the NATS subject day summaries are published on.
const DefaultSubject = "shawarma.day.closed"

// DayClosed is the wire form of a closed day.
type DayClosed struct {
	Day     int    `json:"day"`
	Served  int    `json:"served"`
	Failed  int    `json:"failed"`
	Earned  int    `json:"earned"`
	Tips    int    `json:"tips"`
	Perfect int    `json:"perfect"`
	Money   int    `json:"money"`
	Review  string `json:"review"`
}

// FromSummary converts a day summary into its wire form.
func FromSummary(s sim.DaySummary) DayClosed {
	return DayClosed{
		Day:     s.Stats.DayNumber,
		Served:  s.Stats.ServedCount,
		Failed:  s.Stats.FailedCount,
		Earned:  s.Stats.MoneyEarned,
		Tips:    s.Stats.Tips,
		Perfect: s.Stats.PerfectOrders,
		Money:   s.Money,
		Review:  s.Review,
	}
}

// Publisher delivers closed-day summaries.
type Publisher interface {
	PublishDayClosed(ctx context.Context, d DayClosed) error
	Close() error
}

// Discard drops every summary.
type Discard struct{}

func (Discard) PublishDayClosed(context.Context, DayClosed) error { return nil }
func (Discard) Close() error { return nil }

// NATSPublisher publishes summaries as JSON on a single subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the server at url.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	conn, err := nats.Connect(url, nats.Name("shawarma-sim"), nats.Timeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// Subject returns the subject summaries are published on.
func (p *NATSPublisher) Subject() string { return p.subject }

func (p *NATSPublisher) PublishDayClosed(ctx context.Context, d DayClosed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := Encode(d)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, msg)
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if err := p.conn.Flush(); err != nil {
		logrus.Warnf("notify: flush before close failed: %v", err)
	}
	p.conn.Close()
	return nil
}

// Encode returns the JSON payload for d.
func Encode(d DayClosed) ([]byte, error) {
	msg, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding day %d: %w", d.Day, err)
	}
	return msg, nil
}

// Hook adapts p into a day-closed callback for sim.WithDayClosedHook.
// Publish failures are logged and otherwise ignored.
func Hook(ctx context.Context, p Publisher) func(sim.DaySummary) {
	return func(s sim.DaySummary) {
		d := FromSummary(s)
		if err := p.PublishDayClosed(ctx, d); err != nil {
			logrus.Warnf("notify: publishing day %d: %v", d.Day, err)
			return
		}
		logrus.Debugf("notify: published day %d", d.Day)
	}
}
