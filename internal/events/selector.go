package events

import "time"

// EligibleEvents returns the events eligible for public display: those
// with active status, in their original order. Pure and idempotent.
func EligibleEvents(list []Event) []Event {
	var eligible []Event
	for _, e := range list {
		if e.Status == EventStatusActive {
			eligible = append(eligible, e)
		}
	}
	return eligible
}

// UpcomingEvent picks the single featured event: the soonest active
// event at or after now, or if none exists, the most recently elapsed
// active event. This way the home page always has something to feature
// while any active event exists. Comparisons use millisecond precision;
// equal dates resolve by input order.
func UpcomingEvent(list []Event, now time.Time) (Event, bool) {
	nowMs := now.UnixMilli()

	var (
		future, past       Event
		hasFuture, hasPast bool
	)

	for _, e := range EligibleEvents(list) {
		ms := e.Date.UnixMilli()
		if ms >= nowMs {
			// Earliest future wins; the first seen wins ties.
			if !hasFuture || ms < future.Date.UnixMilli() {
				future = e
				hasFuture = true
			}
		} else {
			// Latest past wins; the last seen wins ties.
			if !hasPast || ms >= past.Date.UnixMilli() {
				past = e
				hasPast = true
			}
		}
	}

	if hasFuture {
		return future, true
	}
	if hasPast {
		return past, true
	}
	return Event{}, false
}

// IsUpcoming reports whether e starts at or after now, at millisecond
// precision.
func IsUpcoming(e Event, now time.Time) bool {
	return e.Date.UnixMilli() >= now.UnixMilli()
}
