package events

// EventStatus is the publish-state flag controlling public visibility.
// It is independent of any scheduling logic: an inactive event in the
// future stays hidden, an active event in the past stays visible.
type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusInactive EventStatus = "inactive"
)

// IsValid reports whether s is a known status.
func (s EventStatus) IsValid() bool {
	return s == EventStatusActive || s == EventStatusInactive
}
