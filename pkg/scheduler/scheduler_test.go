package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeatStopWaitsForInFlightCallback(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	stop := New().Repeat(5*time.Millisecond, func() {
		once.Do(func() { close(entered) })
		<-release
	})
	<-entered

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned while the callback was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("stop did not return after the callback finished")
	}
}

func TestRepeatStopIdempotent(t *testing.T) {
	stop := New().Repeat(time.Hour, func() {})
	stop()
	stop()
}

func TestManualStoppedCallbackNeverFires(t *testing.T) {
	m := NewManual()

	var first, second int
	stopFirst := m.Repeat(time.Second, func() { first++ })
	m.Repeat(time.Second, func() { second++ })

	m.Tick()
	stopFirst()
	m.Tick()

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
