package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchEvent is a directional proximity event emitted by the batch pass.
// It lives only in the epoch event list until flushed.
type MatchEvent struct {
	UserID             uuid.UUID   `msgpack:"u"`
	OtherUserID        uuid.UUID   `msgpack:"o"`
	Coordinates        Coordinates `msgpack:"c"`  // the counterpart's position
	SubjectCoordinates Coordinates `msgpack:"sc"` // the subject's position
	EpochID            int64       `msgpack:"e"`
	MatchedAt          time.Time   `msgpack:"t"`
}

// MatchRecord is the persistent form of a MatchEvent.
type MatchRecord struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	OtherUserID        uuid.UUID
	Coordinates        Coordinates
	SubjectCoordinates Coordinates
	EpochID            int64
	MatchedAt          time.Time
	ExpiresAt          time.Time
}
