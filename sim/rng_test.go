package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		a := rng1.ForSubsystem(SubsystemCustomers).Float64()
		b := rng2.ForSubsystem(SubsystemCustomers).Float64()
		if a != b {
			t.Errorf("Value %d: got %v and %v, want identical", i, a, b)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from the orders stream doesn't shift the customers stream
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemOrders).Float64()
	}
	got := rngA.ForSubsystem(SubsystemCustomers).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	want := fresh.ForSubsystem(SubsystemCustomers).Float64()

	if got != want {
		t.Errorf("customers first value = %v, want %v (isolation broken)", got, want)
	}
}

func TestPartitionedRNG_OrdersUseMasterSeed(t *testing.T) {
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	orders := rng.ForSubsystem(SubsystemOrders)
	direct := rand.New(rand.NewSource(seed))

	for i := 0; i < 10; i++ {
		if got, want := orders.Int63(), direct.Int63(); got != want {
			t.Errorf("Value %d: orders RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if rng.ForSubsystem(SubsystemChef) != rng.ForSubsystem(SubsystemChef) {
		t.Error("ForSubsystem returned different instances for same name")
	}
	if rng.Key() != SimulationKey(42) {
		t.Errorf("Key() = %v, want 42", rng.Key())
	}
}

func TestFnv1a64_NoCollisionAcrossSubsystems(t *testing.T) {
	names := []string{SubsystemOrders, SubsystemCustomers, SubsystemChef, ""}
	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}
