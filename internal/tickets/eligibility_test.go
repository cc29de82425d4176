package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticket(id string, status TicketStatus, available int) Ticket {
	return Ticket{
		ID:                id,
		EventID:           "event-1",
		Name:              "Ticket " + id,
		Price:             500000,
		Quantity:          100,
		AvailableQuantity: available,
		Status:            status,
	}
}

func TestBookableTicketsFiltersInactive(t *testing.T) {
	list := []Ticket{
		ticket("a", TicketStatusActive, 10),
		ticket("b", TicketStatusInactive, 10),
		ticket("c", TicketStatusActive, 0),
	}

	got := BookableTickets(list)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestBookableTicketsKeepsSoldOutVisible(t *testing.T) {
	list := []Ticket{ticket("a", TicketStatusActive, 0)}

	got := BookableTickets(list)
	require.Len(t, got, 1)
	assert.True(t, got[0].SoldOut(), "sold-out ticket stays listed, flagged")
}

func TestBookableTicketsPreservesOrder(t *testing.T) {
	list := []Ticket{
		ticket("vip", TicketStatusActive, 5),
		ticket("regular", TicketStatusActive, 200),
		ticket("table", TicketStatusActive, 2),
	}

	got := BookableTickets(list)
	require.Len(t, got, 3)
	assert.Equal(t, "vip", got[0].ID)
	assert.Equal(t, "regular", got[1].ID)
	assert.Equal(t, "table", got[2].ID)
}

func TestBookableTicketsEmptyInput(t *testing.T) {
	assert.Empty(t, BookableTickets(nil))
	assert.Empty(t, BookableTickets([]Ticket{}))
}

func TestSoldOutProjection(t *testing.T) {
	sold := ticket("a", TicketStatusActive, 0)
	resp := sold.ToResponse()
	assert.True(t, resp.SoldOut)
	assert.Equal(t, "₦5,000", resp.PriceDisplay)

	open := ticket("b", TicketStatusActive, 1)
	assert.False(t, open.ToResponse().SoldOut)
}
