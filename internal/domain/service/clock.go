package service

import "time"

// Clock abstracts the wall clock.
type Clock interface {
	Now() time.Time
}
