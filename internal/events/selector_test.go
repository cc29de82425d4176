package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectorNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func event(id string, status EventStatus, date time.Time) Event {
	return Event{ID: id, Title: "Event " + id, Date: date, Status: status}
}

func TestEligibleEventsFiltersInactive(t *testing.T) {
	list := []Event{
		event("a", EventStatusActive, selectorNow),
		event("b", EventStatusInactive, selectorNow),
		event("c", EventStatusActive, selectorNow),
	}

	got := EligibleEvents(list)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestEligibleEventsIdempotent(t *testing.T) {
	list := []Event{
		event("a", EventStatusActive, selectorNow),
		event("b", EventStatusInactive, selectorNow),
	}

	once := EligibleEvents(list)
	twice := EligibleEvents(once)
	assert.Equal(t, once, twice)
}

func TestUpcomingEventPrefersSoonestFuture(t *testing.T) {
	yesterday := event("past", EventStatusActive, selectorNow.Add(-24*time.Hour))
	nextWeek := event("soon", EventStatusActive, selectorNow.Add(7*24*time.Hour))
	nextMonth := event("later", EventStatusActive, selectorNow.Add(30*24*time.Hour))

	got, ok := UpcomingEvent([]Event{nextMonth, yesterday, nextWeek}, selectorNow)
	require.True(t, ok)
	assert.Equal(t, "soon", got.ID)
}

func TestUpcomingEventFallsBackToLatestPast(t *testing.T) {
	lastMonth := event("older", EventStatusActive, selectorNow.Add(-30*24*time.Hour))
	yesterday := event("recent", EventStatusActive, selectorNow.Add(-24*time.Hour))

	got, ok := UpcomingEvent([]Event{lastMonth, yesterday}, selectorNow)
	require.True(t, ok)
	assert.Equal(t, "recent", got.ID)
}

func TestUpcomingEventIgnoresInactive(t *testing.T) {
	list := []Event{
		event("a", EventStatusInactive, selectorNow.Add(time.Hour)),
		event("b", EventStatusInactive, selectorNow.Add(-time.Hour)),
	}

	_, ok := UpcomingEvent(list, selectorNow)
	assert.False(t, ok, "no active events means nothing to feature")
}

func TestUpcomingEventEmptyList(t *testing.T) {
	_, ok := UpcomingEvent(nil, selectorNow)
	assert.False(t, ok)
}

func TestUpcomingEventTreatsNowAsFuture(t *testing.T) {
	exact := event("exact", EventStatusActive, selectorNow)
	past := event("past", EventStatusActive, selectorNow.Add(-time.Minute))

	got, ok := UpcomingEvent([]Event{past, exact}, selectorNow)
	require.True(t, ok)
	assert.Equal(t, "exact", got.ID, "an event starting this instant still counts as upcoming")
	assert.True(t, IsUpcoming(exact, selectorNow))
	assert.False(t, IsUpcoming(past, selectorNow))
}

func TestUpcomingEventFutureTieBreaksByInputOrder(t *testing.T) {
	date := selectorNow.Add(48 * time.Hour)
	first := event("first", EventStatusActive, date)
	second := event("second", EventStatusActive, date)

	got, ok := UpcomingEvent([]Event{first, second}, selectorNow)
	require.True(t, ok)
	assert.Equal(t, "first", got.ID)
}

func TestUpcomingEventPastTieBreaksByLastSeen(t *testing.T) {
	date := selectorNow.Add(-48 * time.Hour)
	first := event("first", EventStatusActive, date)
	second := event("second", EventStatusActive, date)

	got, ok := UpcomingEvent([]Event{first, second}, selectorNow)
	require.True(t, ok)
	assert.Equal(t, "second", got.ID)
}

func TestUpcomingEventMillisecondPrecision(t *testing.T) {
	// Sub-millisecond differences collapse; a date 500µs after now is
	// still "now" at millisecond precision.
	almost := event("almost", EventStatusActive, selectorNow.Add(500*time.Microsecond))

	got, ok := UpcomingEvent([]Event{almost}, selectorNow)
	require.True(t, ok)
	assert.Equal(t, "almost", got.ID)
	assert.True(t, IsUpcoming(almost, selectorNow))
}
