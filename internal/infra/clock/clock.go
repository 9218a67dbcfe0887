// Package clock provides the wall clock used across the engine.
package clock

import (
	"time"

	"crossing/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the system clock.
var Module = fx.Module("clock",
	fx.Provide(func() service.Clock {
		return SystemClock{}
	}),
)

// SystemClock reads the real time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
