package bookings

import (
	"ticketdesk/internal/events"
	"ticketdesk/internal/shared/utils/format"
	"ticketdesk/internal/tickets"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking as served by the ticketing API. EventID and TicketID arrive
// either as bare ids or expanded documents; TotalAmount is in kobo.
type Booking struct {
	ID            string                     `json:"_id"`
	EventID       Reference[events.Event]    `json:"eventId"`
	TicketID      Reference[tickets.Ticket]  `json:"ticketId"`
	TransactionID string                     `json:"transactionId,omitempty"`
	Email         string                     `json:"email"`
	FullName      string                     `json:"fullName"`
	PhoneNumber   string                     `json:"phoneNumber"`
	Quantity      int                        `json:"quantity"`
	TotalAmount   int64                      `json:"totalAmount"`
	Status        BookingStatus              `json:"status"`
	QRCodeData    string                     `json:"qrCodeData,omitempty"`
	Reference     string                     `json:"reference,omitempty"`
	CreatedAt     string                     `json:"createdAt,omitempty"`
	UpdatedAt     string                     `json:"updatedAt,omitempty"`
}

// BookingResponse is the display projection. Event and ticket names
// are filled when the API expanded the references.
type BookingResponse struct {
	ID                 string        `json:"_id"`
	EventID            string        `json:"eventId"`
	EventTitle         string        `json:"eventTitle,omitempty"`
	TicketID           string        `json:"ticketId"`
	TicketName         string        `json:"ticketName,omitempty"`
	TransactionID      string        `json:"transactionId,omitempty"`
	Email              string        `json:"email"`
	FullName           string        `json:"fullName"`
	PhoneNumber        string        `json:"phoneNumber"`
	Quantity           int           `json:"quantity"`
	TotalAmount        int64         `json:"totalAmount"`
	TotalAmountDisplay string        `json:"totalAmountDisplay"`
	Status             BookingStatus `json:"status"`
	QRCodeData         string        `json:"qrCodeData,omitempty"`
	Reference          string        `json:"reference,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	UpdatedAt          string        `json:"updatedAt,omitempty"`
}

type CreateBookingRequest struct {
	EventID     string `json:"eventId" binding:"required"`
	TicketID    string `json:"ticketId" binding:"required"`
	FullName    string `json:"fullName" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=7,max=20"`
	Quantity    int    `json:"quantity" binding:"required,min=1,max=10"`
	TotalAmount int64  `json:"totalAmount" binding:"required,min=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// BookingListQuery is the admin list request, bound from query params.
type BookingListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	EventID   string `form:"eventId"`
	TicketID  string `form:"ticketId"`
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Email     string `form:"email"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
}

// ToResponse converts a Booking to its display projection.
func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		EventID:            b.EventID.ID(),
		TicketID:           b.TicketID.ID(),
		TransactionID:      b.TransactionID,
		Email:              b.Email,
		FullName:           b.FullName,
		PhoneNumber:        b.PhoneNumber,
		Quantity:           b.Quantity,
		TotalAmount:        b.TotalAmount,
		TotalAmountDisplay: format.Money(b.TotalAmount),
		Status:             b.Status,
		QRCodeData:         b.QRCodeData,
		Reference:          b.Reference,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if e := b.EventID.Value(); e != nil {
		resp.EventTitle = e.Title
	}
	if t := b.TicketID.Value(); t != nil {
		resp.TicketName = t.Name
	}
	return resp
}

// ToResponses maps a slice of bookings to display projections.
func ToResponses(list []Booking) []BookingResponse {
	out := make([]BookingResponse, len(list))
	for i := range list {
		out[i] = list[i].ToResponse()
	}
	return out
}
