package animation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClockStep(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(100 * time.Millisecond)

	var ticks []Tick
	clock.Subscribe(func(tick Tick) {
		ticks = append(ticks, tick)
	})

	clock.Step(3)

	require.Len(t, ticks, 3)
	for i, tick := range ticks {
		assert.Equal(t, uint64(i), tick.Seq)
		assert.Equal(t, time.Duration(i+1)*100*time.Millisecond, tick.Elapsed)
	}
}

func TestManualClockDispatchOrder(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(time.Millisecond)

	var order []string
	clock.Subscribe(func(Tick) { order = append(order, "first") })
	clock.Subscribe(func(Tick) { order = append(order, "second") })
	clock.Subscribe(func(Tick) { order = append(order, "third") })

	clock.Step(2)

	assert.Equal(t, []string{
		"first", "second", "third",
		"first", "second", "third",
	}, order)
}

func TestManualClockUnsubscribeIsolation(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(time.Millisecond)

	var kept, dropped int
	clock.Subscribe(func(Tick) { kept++ })
	id := clock.Subscribe(func(Tick) { dropped++ })

	clock.Step(2)
	clock.Unsubscribe(id)
	clock.Step(3)

	assert.Equal(t, 5, kept)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, clock.SubscriberCount())
}

func TestManualClockUnsubscribeUnknownID(t *testing.T) {
	t.Parallel()

	clock := NewManualClock(time.Millisecond)
	clock.Subscribe(func(Tick) {})

	clock.Unsubscribe(42)

	assert.Equal(t, 1, clock.SubscriberCount())
}

func TestClockDeliversTicks(t *testing.T) {
	t.Parallel()

	clock := NewClock(time.Millisecond)

	var (
		mu    sync.Mutex
		ticks []Tick
	)
	id := clock.Subscribe(func(tick Tick) {
		mu.Lock()
		ticks = append(ticks, tick)
		mu.Unlock()
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(ticks) >= 3
	}, time.Second, time.Millisecond)

	clock.Unsubscribe(id)

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(ticks); i++ {
		assert.Equal(t, ticks[i-1].Seq+1, ticks[i].Seq, "sequence numbers are contiguous")
		assert.Greater(t, ticks[i].Elapsed, ticks[i-1].Elapsed)
	}
}

func TestClockStopsAfterLastUnsubscribe(t *testing.T) {
	t.Parallel()

	clock := NewClock(time.Millisecond)

	var (
		mu    sync.Mutex
		count int
	)
	id := clock.Subscribe(func(Tick) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 1
	}, time.Second, time.Millisecond)

	clock.Unsubscribe(id)

	mu.Lock()
	seen := count
	mu.Unlock()

	// One already-dispatched tick may still land; after that the loop is gone.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, count, seen+1)
}

func TestClockDefaultInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultInterval, NewClock(0).Interval())
	assert.Equal(t, DefaultInterval, NewClock(-time.Second).Interval())
	assert.Equal(t, time.Second, NewClock(time.Second).Interval())
}

func TestClockRestartsAfterIdle(t *testing.T) {
	t.Parallel()

	clock := NewClock(time.Millisecond)

	for range 2 {
		var (
			mu    sync.Mutex
			count int
		)
		id := clock.Subscribe(func(Tick) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return count >= 2
		}, time.Second, time.Millisecond, "timing loop must start for each first subscriber")

		clock.Unsubscribe(id)
	}
}
