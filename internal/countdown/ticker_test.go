package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ticketdesk/pkg/clock"
	"ticketdesk/pkg/scheduler"
)

func TestTickerEmitsOnStartAndTicks(t *testing.T) {
	target := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(target.Add(-25 * time.Hour))
	sched := scheduler.NewManual()

	var emitted []Remaining
	ticker := NewTicker(target, clk, sched, func(r Remaining) {
		emitted = append(emitted, r)
	})

	ticker.Start()
	assert.Equal(t, []Remaining{{Days: 1, Hours: 1}}, emitted, "first snapshot emitted on Start")

	sched.Tick()
	sched.Tick()
	assert.Len(t, emitted, 3)
}

func TestTickerStopsEmitting(t *testing.T) {
	target := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(target.Add(-time.Hour))
	sched := scheduler.NewManual()

	var count int
	ticker := NewTicker(target, clk, sched, func(Remaining) { count++ })

	ticker.Start()
	sched.Tick()
	assert.Equal(t, 2, count)

	ticker.Stop()
	sched.Tick()
	sched.Tick()
	assert.Equal(t, 2, count, "no emission after Stop")
}

func TestTickerStopIdempotentAndBlocksRestart(t *testing.T) {
	sched := scheduler.NewManual()
	ticker := NewTicker(time.Now(), clock.NewSystem(), sched, func(Remaining) {})

	ticker.Stop()
	ticker.Stop()

	// A dismantled view must not be able to revive its timer.
	var count int
	ticker = NewTicker(time.Now().Add(time.Hour), clock.NewSystem(), sched, func(Remaining) { count++ })
	ticker.Start()
	ticker.Stop()
	ticker.Start()
	sched.Tick()
	assert.Equal(t, 1, count, "only the pre-Stop snapshot was emitted")
}

func TestTickerStopWaitsForInFlightEmit(t *testing.T) {
	target := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(target.Add(-time.Hour))
	sched := scheduler.NewManual()

	entered := make(chan struct{})
	release := make(chan struct{})
	ticker := NewTicker(target, clk, sched, func(Remaining) {
		close(entered)
		<-release
	})

	// Start emits synchronously; park it while the subscriber is busy.
	go ticker.Start()
	<-entered

	stopped := make(chan struct{})
	go func() {
		ticker.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a snapshot was still being emitted")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the emission finished")
	}

	// The schedule is quiet from here on.
	sched.Tick()
}

func TestTickerTerminalStateAllZeros(t *testing.T) {
	target := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(target.Add(time.Minute))
	sched := scheduler.NewManual()

	var last Remaining
	ticker := NewTicker(target, clk, sched, func(r Remaining) { last = r })
	ticker.Start()

	assert.True(t, last.IsZero())
}
