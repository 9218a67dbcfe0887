package impl

import (
	"time"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
)

// computeMeetSpots returns the crossing count and the number of encounter
// sessions of an ascending series of crossing times. A new session starts
// when the gap ending at an interior timestamp exceeds gap; the gap ending
// at the last timestamp is never compared.
func computeMeetSpots(times []time.Time, gap time.Duration) (meet, spots int) {
	meet = len(times)
	if meet == 0 {
		return 0, 0
	}

	spots = 1
	for i := 1; i < len(times)-1; i++ {
		if times[i].Sub(times[i-1]) > gap {
			spots++
		}
	}

	return meet, spots
}

// computeScore is floor((meet*0.3 + spots*0.7) * 10) in integer arithmetic.
func computeScore(meet, spots int) int {
	return meet*3 + spots*7
}

// counterpartSeries is the ascending crossing history of one counterpart.
type counterpartSeries struct {
	otherUserID uuid.UUID
	times       []time.Time
	latest      *entity.MatchRecord
}

// groupByCounterpart splits records ordered by counterpart then time into
// one series per counterpart, keeping first-seen order.
func groupByCounterpart(records []*entity.MatchRecord) []*counterpartSeries {
	var (
		series []*counterpartSeries
		index  = make(map[uuid.UUID]*counterpartSeries)
	)

	for _, r := range records {
		s, ok := index[r.OtherUserID]
		if !ok {
			s = &counterpartSeries{otherUserID: r.OtherUserID}
			index[r.OtherUserID] = s
			series = append(series, s)
		}

		s.times = append(s.times, r.MatchedAt)
		if s.latest == nil || !r.MatchedAt.Before(s.latest.MatchedAt) {
			s.latest = r
		}
	}

	return series
}

// uniquePairKeys folds directional events into unordered pairs.
func uniquePairKeys(events []entity.MatchEvent) []entity.PairKey {
	seen := make(map[entity.PairKey]struct{}, len(events))
	keys := make([]entity.PairKey, 0, len(events))

	for _, e := range events {
		key := entity.NewPairKey(e.UserID, e.OtherUserID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}
