package usecase

import (
	"context"
	"time"
)

// PassReport summarizes one batch matching pass.
type PassReport struct {
	EpochID  int64         `json:"epoch_id"`
	Groups   int           `json:"groups"`
	Members  int           `json:"members"`
	Events   int           `json:"events"`
	Flushed  int           `json:"flushed"`
	Pairs    int           `json:"pairs"`
	Duration time.Duration `json:"duration"`
}

// MatchingUsecase runs the batch matching pass.
type MatchingUsecase interface {
	// RunPass rotates the epoch and matches, flushes, accumulates and cleans
	// up the closed one. It returns ErrPassInProgress while another pass runs.
	RunPass(ctx context.Context) (*PassReport, error)
}
