package tickets

// BookableTickets returns the tickets shown on the booking page: those
// with active status, in their original order. Sold-out tickets are
// kept so buyers can see what existed; the SoldOut flag drives the
// disabled call-to-action and the bookings service rejects purchase
// attempts against them.
func BookableTickets(list []Ticket) []Ticket {
	var bookable []Ticket
	for _, t := range list {
		if t.Status == TicketStatusActive {
			bookable = append(bookable, t)
		}
	}
	return bookable
}
