package epoch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stoppedClock time.Time

func (c stoppedClock) Now() time.Time {
	return time.Time(c)
}

func TestState_RotateReturnsClosedEpoch(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	state := New(stoppedClock(start))

	first := state.Current()
	assert.Equal(t, start.UnixMilli(), first.ID)

	closed := state.Rotate(start.Add(10 * time.Minute))

	assert.Equal(t, first, closed)
	assert.Equal(t, start.Add(10*time.Minute).UnixMilli(), state.Current().ID)
}

func TestState_RotateIsStrictlyIncreasing(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	state := New(stoppedClock(start))

	state.Rotate(start)
	state.Rotate(start.Add(-time.Minute))

	assert.Equal(t, start.UnixMilli()+2, state.Current().ID)
}

func TestState_ConcurrentReadersSeeWholeEpochs(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	state := New(stoppedClock(start))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				e := state.Current()
				assert.LessOrEqual(t, e.StartedAt.UnixMilli(), e.ID)
			}
		}()
	}

	for i := range 100 {
		state.Rotate(start.Add(time.Duration(i+1) * time.Second))
	}
	wg.Wait()
}
