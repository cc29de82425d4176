package countdown

import (
	"sync"
	"time"

	"ticketdesk/pkg/clock"
	"ticketdesk/pkg/scheduler"
)

// Ticker recomputes the remaining time once per second and hands each
// snapshot to the subscriber. Its lifetime is tied to the owning view:
// Start begins emission, Stop cancels it. Stop is idempotent and no
// emission happens after it returns.
type Ticker struct {
	target time.Time
	clk    clock.Clock
	sched  scheduler.Scheduler
	emit   func(Remaining)

	mu      sync.Mutex
	cancel  func()
	stopped bool
}

// NewTicker creates a ticker for target. emit is called with every
// snapshot, starting immediately on Start.
func NewTicker(target time.Time, clk clock.Clock, sched scheduler.Scheduler, emit func(Remaining)) *Ticker {
	return &Ticker{
		target: target,
		clk:    clk,
		sched:  sched,
		emit:   emit,
	}
}

// Start emits the current snapshot and schedules a recomputation every
// second. Calling Start on a stopped ticker does nothing.
func (t *Ticker) Start() {
	t.mu.Lock()
	if t.stopped || t.cancel != nil {
		t.mu.Unlock()
		return
	}
	t.cancel = t.sched.Repeat(time.Second, t.tick)
	t.mu.Unlock()

	// First snapshot immediately, so the view never shows a blank
	// countdown while waiting for the first tick.
	t.tick()
}

// Stop cancels the schedule. It waits for an in-flight emission to
// finish, so no snapshot is delivered after it returns. The emit
// callback must not call back into the ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.stopped = true
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// tick emits while holding the mutex: Stop blocks behind a running
// emission, and once stopped is set no further emission can start.
func (t *Ticker) tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.emit(Compute(t.target, t.clk.Now()))
}
