package service

import (
	"time"

	"crossing/internal/domain/entity"
)

// EpochState is the process-wide current epoch. Ingestion reads it; only the
// matching pass rotates it.
type EpochState interface {
	Current() entity.Epoch
	Rotate(now time.Time) entity.Epoch
}
