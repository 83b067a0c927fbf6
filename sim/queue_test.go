package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestQueue(seed int64) *CustomerQueue {
	cfg := DefaultConfig()
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	orders := NewOrderGenerator(cfg, rng.ForSubsystem(SubsystemOrders))
	q := NewCustomerQueue(cfg, orders, rng.ForSubsystem(SubsystemCustomers))
	q.Reset(testEpoch)
	return q
}

func TestCustomerQueue_Front_NonEmpty_ReturnsFirstArrival(t *testing.T) {
	// GIVEN a queue with customers [A, B]
	q := newTestQueue(1)
	a := q.Spawn(Order{Pita, Meat, Sauce})
	q.Spawn(Order{Pita, Meat, Cheese, Sauce})

	// WHEN Front() is called
	got := q.Front()

	// THEN it returns A without removing it
	assert.Same(t, a, got)
	assert.Equal(t, 2, q.Len())
}

func TestCustomerQueue_Front_Empty_ReturnsNil(t *testing.T) {
	q := newTestQueue(1)
	assert.Nil(t, q.Front())
	assert.Nil(t, q.RemoveFront())
}

func TestCustomerQueue_RemoveFront_IsFIFO(t *testing.T) {
	// GIVEN a queue with customers [A, B, C]
	q := newTestQueue(1)
	ids := []string{
		q.Spawn(Order{Pita, Meat, Sauce}).ID,
		q.Spawn(Order{Pita, Meat, Sauce}).ID,
		q.Spawn(Order{Pita, Meat, Sauce}).ID,
	}

	// WHEN all customers are removed
	var got []string
	for q.Len() > 0 {
		got = append(got, q.RemoveFront().ID)
	}

	// THEN they leave in arrival order
	assert.Equal(t, ids, got)
}

func TestCustomerQueue_Spawn_FreshCustomer(t *testing.T) {
	q := newTestQueue(7)
	c := q.Spawn(Order{Pita, Meat, Fries, Sauce})

	assert.Equal(t, 100.0, c.Patience)
	assert.Equal(t, 100.0, c.MaxPatience)
	assert.NotEmpty(t, c.ID)
	assert.GreaterOrEqual(t, c.AvatarID, 0)
	assert.Less(t, c.AvatarID, avatarCount)
}

func TestCustomerQueue_Spawn_UniqueAndReproducibleIDs(t *testing.T) {
	q1 := newTestQueue(42)
	q2 := newTestQueue(42)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		a := q1.SpawnFor(1)
		b := q2.SpawnFor(1)
		require.Equal(t, a.ID, b.ID, "same seed must mint the same ids")
		require.Equal(t, a.Order, b.Order)
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestCustomerQueue_Decay_RemovesExpired(t *testing.T) {
	// GIVEN two customers, one almost out of patience
	q := newTestQueue(1)
	tired := q.Spawn(Order{Pita, Meat, Sauce})
	fresh := q.Spawn(Order{Pita, Meat, Sauce})
	tired.Patience = 0.5

	// WHEN one day-1 step of decay (0.6) runs
	expired := q.Decay(1)

	// THEN only the tired customer leaves, and the other lost 0.6 patience
	require.Len(t, expired, 1)
	assert.Equal(t, tired.ID, expired[0].ID)
	assert.Equal(t, 1, q.Len())
	assert.Same(t, fresh, q.Front())
	assert.InDelta(t, 99.4, fresh.Patience, 1e-9)
}

func TestCustomerQueue_Decay_PatienceStaysInBounds(t *testing.T) {
	q := newTestQueue(3)
	for i := 0; i < 4; i++ {
		q.SpawnFor(10)
	}
	for step := 0; step < 200 && q.Len() > 0; step++ {
		q.Decay(10)
		for _, c := range q.Customers() {
			assert.Greater(t, c.Patience, 0.0)
			assert.LessOrEqual(t, c.Patience, c.MaxPatience)
		}
	}
	assert.Equal(t, 0, q.Len(), "everyone runs out of patience eventually")
}

func TestCustomerQueue_Decay_ExactlyZeroIsExpired(t *testing.T) {
	q := newTestQueue(1)
	c := q.Spawn(Order{Pita, Meat, Sauce})
	c.Patience = 0.6

	expired := q.Decay(1)

	assert.Len(t, expired, 1)
	assert.Equal(t, 0, q.Len())
}

func TestCustomerQueue_MaybeSpawn_WaitsForInterval(t *testing.T) {
	// GIVEN day 1 (interval 4500ms) and lastSpawn at the epoch
	q := newTestQueue(1)

	// WHEN exactly the interval has elapsed
	// THEN no spawn: the check is strictly greater-than
	assert.Nil(t, q.MaybeSpawn(testEpoch.Add(4500*time.Millisecond), 1, q.Len()))

	// WHEN one more millisecond elapses
	now := testEpoch.Add(4501 * time.Millisecond)
	c := q.MaybeSpawn(now, 1, q.Len())

	// THEN a customer arrives and lastSpawn moves to now
	require.NotNil(t, c)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, now, q.LastSpawn())
}

func TestCustomerQueue_MaybeSpawn_FullQueueBacksOff(t *testing.T) {
	// GIVEN a queue already holding 4 customers
	q := newTestQueue(1)
	for i := 0; i < 4; i++ {
		q.SpawnFor(1)
	}

	// WHEN the spawn check fires
	now := testEpoch.Add(5 * time.Second)
	c := q.MaybeSpawn(now, 1, q.Len())

	// THEN no 5th customer is added and lastSpawn is backdated by 2000ms
	assert.Nil(t, c)
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, now.Add(-2000*time.Millisecond), q.LastSpawn())

	// AND once a seat frees, eligibility is measured from the backdated time
	q.RemoveFront()
	assert.Nil(t, q.MaybeSpawn(now.Add(2500*time.Millisecond), 1, q.Len()), "4500ms since backdated mark not yet exceeded")
	assert.NotNil(t, q.MaybeSpawn(now.Add(2501*time.Millisecond), 1, q.Len()))
}

func TestCustomerQueue_MaybeSpawn_FloorIntervalRetriesNextStep(t *testing.T) {
	// GIVEN day 10, where interval = backoff = 2000ms, and a full queue
	q := newTestQueue(1)
	for i := 0; i < 4; i++ {
		q.SpawnFor(10)
	}
	now := testEpoch.Add(3 * time.Second)
	q.MaybeSpawn(now, 10, q.Len())

	// WHEN a seat frees and the very next step runs
	q.RemoveFront()
	c := q.MaybeSpawn(now.Add(100*time.Millisecond), 10, q.Len())

	// THEN a customer spawns immediately
	assert.NotNil(t, c)
}

func TestCustomerQueue_Customers_ReturnsCopies(t *testing.T) {
	q := newTestQueue(1)
	q.Spawn(Order{Pita, Meat, Sauce})

	snap := q.Customers()
	snap[0].Patience = 1
	snap[0].Order[0] = Cheese

	assert.Equal(t, 100.0, q.Front().Patience)
	assert.Equal(t, Pita, q.Front().Order[0])
}

func TestCustomerQueue_Reset_Empties(t *testing.T) {
	q := newTestQueue(1)
	q.SpawnFor(1)
	later := testEpoch.Add(time.Minute)

	q.Reset(later)

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, later, q.LastSpawn())
	assert.Equal(t, "[]", q.String())
}

func TestCustomerQueue_MaybeSpawn_UsesLengthFromStepStart(t *testing.T) {
	// GIVEN 3 waiting customers, but the step started with 4
	q := newTestQueue(1)
	for i := 0; i < 3; i++ {
		q.SpawnFor(1)
	}

	// WHEN the spawn check fires with the step-start length
	now := testEpoch.Add(5 * time.Second)
	c := q.MaybeSpawn(now, 1, 4)

	// THEN the queue counts as full: no spawn, lastSpawn backdated
	assert.Nil(t, c)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, now.Add(-2000*time.Millisecond), q.LastSpawn())
}
