package metrics

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// samples aggregates timings per id between reads.
var samples = struct {
	sync.Mutex
	taken map[string][]int
}{
	taken: make(map[string][]int),
}

// Timer is for timing events, e.g. serving a query or building a source
// model.
type Timer struct {
	start   time.Time
	taken   int
	stopped bool
}

type TimerStats struct {
	ID           string
	Count        int
	Average      int
	Percentile95 int
	Percentile50 int
}

// Start returns started Timer.
func Start() Timer {
	return Timer{
		start: time.Now().UTC(),
	}
}

// Stops the timer
func (t *Timer) Stop() {
	t.taken = int(time.Since(t.start) / time.Millisecond)
	t.stopped = true
}

// Stops the timer if it is not already stopped.  Tracks the time taken
// in milliseconds with identity id.
func (t *Timer) Track(id string) error {
	if !t.stopped {
		t.Stop()
	}

	if id == "" {
		return fmt.Errorf("timer tracked with empty id took %d", t.taken)
	}

	samples.Lock()
	samples.taken[id] = append(samples.taken[id], t.taken)
	samples.Unlock()

	return nil
}

// Returns the time taken between start and stop in milliseconds.
func (t *Timer) Taken() int {
	return t.taken
}

// ReadTimers returns stats for all timers tracked since the last call and
// resets the aggregation.
func ReadTimers() []TimerStats {
	var s []TimerStats

	samples.Lock()
	for id, taken := range samples.taken {
		sort.Ints(taken)

		var sum int
		for _, v := range taken {
			sum += v
		}

		s = append(s, TimerStats{
			ID:           id,
			Count:        len(taken),
			Average:      sum / len(taken),
			Percentile50: percentile(0.5, taken),
			Percentile95: percentile(0.95, taken),
		})

		delete(samples.taken, id)
	}
	samples.Unlock()

	return s
}

// percentile returns the kth percentile of sorted v using the
// nearest rank method.
func percentile(k float64, v []int) int {
	if len(v) == 0 {
		return 0
	}

	i := int(k*float64(len(v))+0.5) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(v) {
		i = len(v) - 1
	}

	return v[i]
}
