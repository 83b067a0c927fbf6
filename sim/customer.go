// Defines the Customer struct that models one waiting customer in the shop.
// Tracks the order, the decaying patience and a cosmetic avatar.

package sim

import (
	"fmt"
)

// Mood is a coarse view of a customer's patience, for renderers.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodAngry   Mood = "angry"
)

// avatarCount is the number of cosmetic avatars a customer can be drawn with.
const avatarCount = 5

// Customer is owned by the CustomerQueue from spawn until it is served or
// runs out of patience.
type Customer struct {
	ID string // Unique identifier

	Patience    float64 // Decays every simulation step; the customer leaves at <= 0
	MaxPatience float64 // Patience at spawn

	Order    Order // What the customer wants
	AvatarID int   // Cosmetic, in [0, avatarCount)
}

// PatienceRatio returns patience as a fraction of MaxPatience.
func (c Customer) PatienceRatio() float64 {
	if c.MaxPatience <= 0 {
		return 0
	}
	return c.Patience / c.MaxPatience
}

// Mood buckets the patience ratio: happy from 50%, angry below 20%.
func (c Customer) Mood() Mood {
	r := c.PatienceRatio()
	switch {
	case r < 0.2:
		return MoodAngry
	case r < 0.5:
		return MoodNeutral
	}
	return MoodHappy
}

// clone returns a copy that shares no slices with c.
func (c Customer) clone() Customer {
	c.Order = append(Order(nil), c.Order...)
	return c
}

// This method returns a human-readable string representation of a Customer.
func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %s, Patience: %.1f/%.0f, Order: %s)", c.ID, c.Patience, c.MaxPatience, c.Order)
}
