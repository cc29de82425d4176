package scheduler

import (
	"sync"
	"time"
)

// Scheduler runs callbacks on a repeating interval. The returned stop
// function cancels the schedule; after it returns no further callbacks run.
type Scheduler interface {
	Repeat(interval time.Duration, fn func()) (stop func())
}

type tickerScheduler struct{}

// New returns a scheduler backed by time.Ticker.
func New() Scheduler {
	return tickerScheduler{}
}

func (tickerScheduler) Repeat(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
		// Wait out an in-flight callback so the schedule is truly
		// quiet once stop returns.
		<-finished
	}
}

// Manual is a scheduler driven by explicit Tick calls, for tests that
// must not depend on wall-clock timing.
type Manual struct {
	mu      sync.Mutex
	fns     []func()
	stopped []bool
}

// NewManual returns a manually driven scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Repeat registers fn; it only runs when Tick is called.
func (m *Manual) Repeat(interval time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := len(m.fns)
	m.fns = append(m.fns, fn)
	m.stopped = append(m.stopped, false)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stopped[idx] = true
	}
}

// Tick fires every registered callback that has not been stopped.
// Callbacks run under the scheduler lock so a concurrent stop waits
// for them, matching the real scheduler's guarantee.
func (m *Manual) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, fn := range m.fns {
		if !m.stopped[i] {
			fn()
		}
	}
}
