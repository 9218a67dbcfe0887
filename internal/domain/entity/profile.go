package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the subset of the account profile the engine reads.
type Profile struct {
	UserID      uuid.UUID
	DisplayName string
	Age         int
	Gender      string
	QuietWindow *QuietWindow // nil when location tracking is never paused
}

// QuietWindow is a daily do-not-track range in local minutes since midnight.
// Start is inclusive, End exclusive; Start > End wraps over midnight.
type QuietWindow struct {
	StartMinute int
	EndMinute   int
}

// Contains reports whether t, read in loc, falls inside the window.
func (w *QuietWindow) Contains(t time.Time, loc *time.Location) bool {
	if w == nil || w.StartMinute == w.EndMinute {
		return false
	}

	local := t.In(loc)
	minute := local.Hour()*60 + local.Minute()

	if w.StartMinute < w.EndMinute {
		return minute >= w.StartMinute && minute < w.EndMinute
	}

	return minute >= w.StartMinute || minute < w.EndMinute
}
