package entity

import (
	"strconv"
	"time"
)

// Epoch is the window during which groups and matches accumulate
// before the batch matching pass flushes and rotates them out.
type Epoch struct {
	ID        int64     // Unix milliseconds of the epoch start; strictly increasing.
	StartedAt time.Time // When the epoch became current.
}

func (e Epoch) String() string {
	return strconv.FormatInt(e.ID, 10)
}
