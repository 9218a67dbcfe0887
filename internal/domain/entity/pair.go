package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CategoryCrossing tags pairs matched by the proximity engine.
const CategoryCrossing = "crossing"

// PairStatus is the lifecycle state of a pair aggregate.
type PairStatus string

const (
	PairStatusActive    PairStatus = "active"
	PairStatusSuspended PairStatus = "suspended"
)

// PairKey identifies an unordered pair of users; Low sorts before High.
type PairKey struct {
	Low  uuid.UUID
	High uuid.UUID
}

// NewPairKey orders a and b so that (a,b) and (b,a) produce the same key.
func NewPairKey(a, b uuid.UUID) PairKey {
	if a.String() > b.String() {
		a, b = b, a
	}

	return PairKey{Low: a, High: b}
}

// Other returns the member of the pair that is not userID.
func (k PairKey) Other(userID uuid.UUID) uuid.UUID {
	if k.Low == userID {
		return k.High
	}

	return k.Low
}

// PairAggregate is the lifetime tally of an unordered pair.
type PairAggregate struct {
	ID                uuid.UUID
	Key               PairKey
	MeetMatchingCount int64      // Number of epochs in which the pair crossed.
	Categories        []string   // Features under which the pair has matched.
	Status            PairStatus // Suspended while a block exists.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasCrossFeatureMatch reports whether the pair matched through any feature
// other than crossing.
func (p *PairAggregate) HasCrossFeatureMatch() bool {
	if p == nil {
		return false
	}

	return slices.ContainsFunc(p.Categories, func(c string) bool {
		return c != CategoryCrossing
	})
}
