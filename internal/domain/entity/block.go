package entity

import "github.com/google/uuid"

// BlockRelation records that Blocker blocks Blocked.
type BlockRelation struct {
	BlockerID uuid.UUID
	BlockedID uuid.UUID
}

// BlockSet is an in-memory snapshot of block relations, keyed by unordered
// pair so that a block in either direction excludes the pair.
type BlockSet map[PairKey]struct{}

// NewBlockSet builds a snapshot from the given relations.
func NewBlockSet(relations []BlockRelation) BlockSet {
	set := make(BlockSet, len(relations))
	for _, r := range relations {
		set[NewPairKey(r.BlockerID, r.BlockedID)] = struct{}{}
	}

	return set
}

// Blocked reports whether a or b blocks the other.
func (s BlockSet) Blocked(a, b uuid.UUID) bool {
	_, ok := s[NewPairKey(a, b)]

	return ok
}
