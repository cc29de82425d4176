package bookings

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/events"
)

func TestReferenceUnmarshalsBareID(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "booking-1",
		"eventId": "event-1",
		"ticketId": "ticket-1",
		"email": "a@b.com",
		"fullName": "A B",
		"phoneNumber": "+2348000000000",
		"quantity": 1,
		"totalAmount": 500000,
		"status": "pending"
	}`), &b))

	assert.Equal(t, "event-1", b.EventID.ID())
	assert.False(t, b.EventID.Expanded())
	assert.Nil(t, b.EventID.Value())
}

func TestReferenceUnmarshalsExpandedDocument(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "booking-1",
		"eventId": {"_id": "event-1", "title": "Launch Night", "date": "2026-06-01T18:00:00Z", "status": "active"},
		"ticketId": {"_id": "ticket-1", "eventId": "event-1", "name": "Regular", "price": 500000, "quantity": 100, "availableQuantity": 40, "status": "active"},
		"email": "a@b.com",
		"fullName": "A B",
		"phoneNumber": "+2348000000000",
		"quantity": 1,
		"totalAmount": 500000,
		"status": "confirmed"
	}`), &b))

	require.True(t, b.EventID.Expanded())
	assert.Equal(t, "event-1", b.EventID.ID())
	assert.Equal(t, "Launch Night", b.EventID.Value().Title)

	require.True(t, b.TicketID.Expanded())
	assert.Equal(t, "Regular", b.TicketID.Value().Name)

	resp := b.ToResponse()
	assert.Equal(t, "Launch Night", resp.EventTitle)
	assert.Equal(t, "Regular", resp.TicketName)
	assert.Equal(t, "₦5,000", resp.TotalAmountDisplay)
}

func TestReferenceMarshalsBackToOriginalShape(t *testing.T) {
	var bare Reference[events.Event]
	require.NoError(t, json.Unmarshal([]byte(`"event-1"`), &bare))

	out, err := json.Marshal(bare)
	require.NoError(t, err)
	assert.JSONEq(t, `"event-1"`, string(out))

	var expanded Reference[events.Event]
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "event-1", "title": "Launch Night", "date": "2026-06-01T18:00:00Z", "status": "active"}`), &expanded))

	out, err = json.Marshal(expanded)
	require.NoError(t, err)
	var round events.Event
	require.NoError(t, json.Unmarshal(out, &round))
	assert.Equal(t, "event-1", round.ID)
	assert.Equal(t, time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC), round.Date.UTC())
}

func TestReferenceHandlesNull(t *testing.T) {
	var ref Reference[events.Event]
	require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
	assert.Empty(t, ref.ID())
	assert.False(t, ref.Expanded())
}
