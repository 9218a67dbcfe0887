package impl

import (
	"testing"
	"time"

	"crossing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMeetSpots(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(minutes ...int) []time.Time {
		times := make([]time.Time, 0, len(minutes))
		for _, m := range minutes {
			times = append(times, base.Add(time.Duration(m)*time.Minute))
		}

		return times
	}

	tests := []struct {
		name      string
		times     []time.Time
		wantMeet  int
		wantSpots int
	}{
		{name: "no records", times: nil, wantMeet: 0, wantSpots: 0},
		{name: "single record", times: at(0), wantMeet: 1, wantSpots: 1},
		{name: "two records far apart", times: at(0, 60), wantMeet: 2, wantSpots: 1},
		{name: "interior gap over threshold", times: at(0, 5, 20, 25), wantMeet: 4, wantSpots: 2},
		{name: "gap of exactly the threshold", times: at(0, 11, 12), wantMeet: 3, wantSpots: 1},
		{name: "every interior gap over threshold", times: at(0, 20, 40, 60, 61), wantMeet: 5, wantSpots: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meet, spots := computeMeetSpots(tt.times, 11*time.Minute)
			assert.Equal(t, tt.wantMeet, meet)
			assert.Equal(t, tt.wantSpots, spots)
		})
	}
}

func TestComputeScore(t *testing.T) {
	assert.Equal(t, 0, computeScore(0, 0))
	assert.Equal(t, 26, computeScore(4, 2))
	assert.Equal(t, 10, computeScore(1, 1))
}

func TestGroupByCounterpart(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID, b, c := uuid.New(), uuid.New(), uuid.New()

	records := []*entity.MatchRecord{
		{UserID: userID, OtherUserID: b, MatchedAt: base},
		{UserID: userID, OtherUserID: b, MatchedAt: base.Add(time.Minute), Coordinates: taipei101},
		{UserID: userID, OtherUserID: c, MatchedAt: base},
	}

	series := groupByCounterpart(records)
	require.Len(t, series, 2)
	assert.Equal(t, b, series[0].otherUserID)
	assert.Len(t, series[0].times, 2)
	assert.Equal(t, taipei101, series[0].latest.Coordinates)
	assert.Equal(t, c, series[1].otherUserID)
}

func TestUniquePairKeys(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	keys := uniquePairKeys([]entity.MatchEvent{
		{UserID: a, OtherUserID: b},
		{UserID: b, OtherUserID: a},
		{UserID: a, OtherUserID: b},
		{UserID: c, OtherUserID: a},
	})

	assert.ElementsMatch(t, []entity.PairKey{entity.NewPairKey(a, b), entity.NewPairKey(a, c)}, keys)
}
