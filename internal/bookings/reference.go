package bookings

import "encoding/json"

// Reference holds a field the API returns either as a bare id string
// or as the expanded document, depending on whether the list was
// populated server-side. Callers always get a usable id; the expanded
// value is present only when the API sent it.
type Reference[T any] struct {
	id    string
	value *T
}

// ID returns the referenced document id regardless of expansion.
func (r Reference[T]) ID() string { return r.id }

// Value returns the expanded document, or nil when the API sent only
// the id.
func (r Reference[T]) Value() *T { return r.value }

// Expanded reports whether the full document was populated.
func (r Reference[T]) Expanded() bool { return r.value != nil }

func (r *Reference[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = Reference[T]{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Reference[T]{id: id}
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	// Every expanded document carries its Mongo-style id.
	var probe struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	*r = Reference[T]{id: probe.ID, value: &value}
	return nil
}

func (r Reference[T]) MarshalJSON() ([]byte, error) {
	if r.value != nil {
		return json.Marshal(r.value)
	}
	return json.Marshal(r.id)
}
