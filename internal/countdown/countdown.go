package countdown

import "time"

// Remaining is the decomposed time left until an event starts. All
// fields are non-negative; once the target passes every field is zero.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports the terminal state (event started or passed).
func (r Remaining) IsZero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

// Compute decomposes the time between now and target. It is a pure
// function of the two instants; callers re-invoke it on a schedule to
// animate a live countdown.
func Compute(target, now time.Time) Remaining {
	diff := target.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return Remaining{}
	}

	const (
		msPerDay    = 24 * 60 * 60 * 1000
		msPerHour   = 60 * 60 * 1000
		msPerMinute = 60 * 1000
		msPerSecond = 1000
	)

	return Remaining{
		Days:    int(diff / msPerDay),
		Hours:   int((diff % msPerDay) / msPerHour),
		Minutes: int((diff % msPerHour) / msPerMinute),
		Seconds: int((diff % msPerMinute) / msPerSecond),
	}
}
