package animation

import (
	"slices"
	"sync"
	"time"
)

// Ticker is the subscription surface of a frame clock. Runners register a
// callback invoked once per interval; callbacks run in registration order on
// a single dispatch goroutine, so effects never advance concurrently with
// each other.
type Ticker interface {
	// Subscribe registers a callback and returns its subscription id.
	Subscribe(fn func(Tick)) int

	// Unsubscribe stops future callbacks for the given id. Other
	// subscribers are unaffected. At most one already-dispatched tick may
	// still land after Unsubscribe returns.
	Unsubscribe(id int)
}

type subscriber struct {
	id int
	fn func(Tick)
}

// Clock is a wall-time Ticker. The timing loop starts lazily with the first
// subscriber and stops when the last one unsubscribes. The clock has no
// terminal knowledge.
type Clock struct {
	interval time.Duration

	mu      sync.Mutex
	subs    []subscriber
	nextID  int
	running bool
	stopCh  chan struct{}
}

// NewClock creates a Clock with the given tick interval. Non-positive
// intervals fall back to DefaultInterval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Clock{interval: interval}
}

// Interval returns the fixed tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Subscribe implements Ticker.
func (c *Clock) Subscribe(fn func(Tick)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	if !c.running {
		c.running = true
		c.stopCh = make(chan struct{})
		go c.loop(c.stopCh)
	}
	return id
}

// Unsubscribe implements Ticker.
func (c *Clock) Unsubscribe(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s.id == id {
			c.subs = slices.Delete(c.subs, i, i+1)
			break
		}
	}
	if len(c.subs) == 0 && c.running {
		c.running = false
		close(c.stopCh)
	}
}

// loop is the single timing goroutine. All subscriber callbacks for a tick
// run here, sequentially, against the same Tick value.
func (c *Clock) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	start := time.Now()
	var seq uint64

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			tick := Tick{Seq: seq, Elapsed: now.Sub(start)}
			seq++
			for _, s := range c.snapshot() {
				s.fn(tick)
			}
		}
	}
}

// snapshot copies the subscriber list so dispatch does not hold the lock
// while callbacks run.
func (c *Clock) snapshot() []subscriber {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.subs)
}

// ManualClock is a deterministic Ticker for tests. Ticks are produced only
// by explicit Step calls; no goroutine and no wall-clock sleeping are
// involved.
type ManualClock struct {
	interval time.Duration

	mu     sync.Mutex
	subs   []subscriber
	nextID int
	seq    uint64
}

// NewManualClock creates a ManualClock whose Elapsed values advance by the
// given interval per step.
func NewManualClock(interval time.Duration) *ManualClock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &ManualClock{interval: interval}
}

// Subscribe implements Ticker.
func (m *ManualClock) Subscribe(fn func(Tick)) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	return id
}

// Unsubscribe implements Ticker.
func (m *ManualClock) Unsubscribe(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s.id == id {
			m.subs = slices.Delete(m.subs, i, i+1)
			return
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (m *ManualClock) SubscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// Step dispatches n ticks synchronously, in registration order.
func (m *ManualClock) Step(n int) {
	for range n {
		m.mu.Lock()
		tick := Tick{Seq: m.seq, Elapsed: time.Duration(m.seq+1) * m.interval}
		m.seq++
		subs := slices.Clone(m.subs)
		m.mu.Unlock()

		for _, s := range subs {
			s.fn(tick)
		}
	}
}
