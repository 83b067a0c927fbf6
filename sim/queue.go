// Implements the CustomerQueue, which holds every customer waiting to be served.
// Customers are enqueued on arrival; only the front one can be served.

package sim

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CustomerQueue is a FIFO of waiting customers. It owns spawn scheduling and
// patience decay; it never decides outcomes of a serve.
type CustomerQueue struct {
	queue     []*Customer // FIFO by arrival
	orders    *OrderGenerator
	rng       *rand.Rand // ids and avatars
	cfg       Config
	lastSpawn time.Time
}

// NewCustomerQueue creates an empty queue.
func NewCustomerQueue(cfg Config, orders *OrderGenerator, rng *rand.Rand) *CustomerQueue {
	if orders == nil || rng == nil {
		panic("NewCustomerQueue: orders and rng must not be nil")
	}
	return &CustomerQueue{orders: orders, rng: rng, cfg: cfg}
}

// Reset empties the queue and restarts spawn scheduling at now.
func (q *CustomerQueue) Reset(now time.Time) {
	q.queue = nil
	q.lastSpawn = now
}

// Spawn appends a fresh customer wanting order.
func (q *CustomerQueue) Spawn(order Order) *Customer {
	c := &Customer{
		ID:          q.newID(),
		Patience:    q.cfg.MaxPatience,
		MaxPatience: q.cfg.MaxPatience,
		Order:       order,
		AvatarID:    q.rng.Intn(avatarCount),
	}
	q.queue = append(q.queue, c)
	logrus.Debugf("<< Arrival: %s wants %s (queue=%d)", c.ID, c.Order, len(q.queue))
	return c
}

// SpawnFor generates an order for day and spawns a customer wanting it.
func (q *CustomerQueue) SpawnFor(day int) *Customer {
	return q.Spawn(q.orders.Generate(day))
}

// newID mints a UUID from the seeded stream so sessions replay identically.
func (q *CustomerQueue) newID() string {
	id, err := uuid.NewRandomFromReader(q.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// MaybeSpawn runs the spawn check for one simulation step.
//
// Once more than SpawnInterval(day) has passed since the last spawn, a customer
// arrives if the queue has room. A full queue skips the spawn and backdates
// lastSpawn to now - CapacityBackoff, so the next check comes after the backoff
// rather than the full interval.
//
// queued is the queue length the step started with: a customer that timed out
// during this step does not free its seat until the next one.
func (q *CustomerQueue) MaybeSpawn(now time.Time, day, queued int) *Customer {
	if now.Sub(q.lastSpawn) <= q.cfg.SpawnInterval(day) {
		return nil
	}
	if queued < q.cfg.MaxQueueLength {
		q.lastSpawn = now
		return q.SpawnFor(day)
	}
	q.lastSpawn = now.Add(-time.Duration(q.cfg.CapacityBackoffMs) * time.Millisecond)
	logrus.Debugf("queue full (%d), spawn deferred", queued)
	return nil
}

// Decay lowers every customer's patience by one step's worth and removes the
// customers that ran out, returning them in queue order.
func (q *CustomerQueue) Decay(day int) []Customer {
	decay := q.cfg.PatienceDecay(day)
	var expired []Customer
	kept := q.queue[:0]
	for _, c := range q.queue {
		c.Patience -= decay
		if c.Patience <= 0 {
			c.Patience = 0
			expired = append(expired, c.clone())
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(q.queue); i++ {
		q.queue[i] = nil
	}
	q.queue = kept
	return expired
}

// LastSpawn returns the time the spawn interval is measured from.
func (q *CustomerQueue) LastSpawn() time.Time {
	return q.lastSpawn
}

func (q *CustomerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range q.queue {
		sb.WriteString(fmt.Sprint(*val))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of waiting customers.
func (q *CustomerQueue) Len() int {
	return len(q.queue)
}

// Front returns the customer at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *CustomerQueue) Front() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// RemoveFront removes and returns the front customer, or nil if empty.
func (q *CustomerQueue) RemoveFront() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	c := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return c
}

// Customers returns copies of the waiting customers in arrival order.
func (q *CustomerQueue) Customers() []Customer {
	out := make([]Customer, len(q.queue))
	for i, c := range q.queue {
		out[i] = c.clone()
	}
	return out
}
