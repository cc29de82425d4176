package tickets

import "ticketdesk/internal/shared/utils/format"

// TicketStatus is the publish-state flag on a ticket type.
type TicketStatus string

const (
	TicketStatusActive   TicketStatus = "active"
	TicketStatusInactive TicketStatus = "inactive"
)

// Ticket as served by the ticketing API. Price is in the minor
// currency unit (kobo); the invariant 0 <= availableQuantity <= quantity
// is enforced upstream.
type Ticket struct {
	ID                string       `json:"_id"`
	EventID           string       `json:"eventId"`
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Price             int64        `json:"price"`
	Quantity          int          `json:"quantity"`
	AvailableQuantity int          `json:"availableQuantity"`
	Status            TicketStatus `json:"status"`
	CreatedAt         string       `json:"createdAt,omitempty"`
	UpdatedAt         string       `json:"updatedAt,omitempty"`
}

// SoldOut reports whether no quantity remains. Sold-out tickets stay
// visible on the booking page but their call-to-action is disabled and
// booking attempts are rejected.
func (t *Ticket) SoldOut() bool {
	return t.AvailableQuantity <= 0
}

// TicketResponse is the display projection served to pages.
type TicketResponse struct {
	ID                string       `json:"_id"`
	EventID           string       `json:"eventId"`
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Price             int64        `json:"price"`
	PriceDisplay      string       `json:"priceDisplay"`
	Quantity          int          `json:"quantity"`
	AvailableQuantity int          `json:"availableQuantity"`
	SoldOut           bool         `json:"soldOut"`
	Status            TicketStatus `json:"status"`
	CreatedAt         string       `json:"createdAt,omitempty"`
	UpdatedAt         string       `json:"updatedAt,omitempty"`
}

type CreateTicketRequest struct {
	EventID     string `json:"eventId" binding:"required"`
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Price       int64  `json:"price" binding:"min=0"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateTicketRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Price       *int64  `json:"price" binding:"omitempty,min=0"`
	Quantity    *int    `json:"quantity" binding:"omitempty,min=1"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// TicketListQuery is the admin list request, bound from query params.
type TicketListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	EventID   string `form:"eventId"`
	Status    string `form:"status" binding:"omitempty,oneof=active inactive"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
}

// ToResponse converts a Ticket to its display projection.
func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		ID:                t.ID,
		EventID:           t.EventID,
		Name:              t.Name,
		Description:       t.Description,
		Price:             t.Price,
		PriceDisplay:      format.Money(t.Price),
		Quantity:          t.Quantity,
		AvailableQuantity: t.AvailableQuantity,
		SoldOut:           t.SoldOut(),
		Status:            t.Status,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToResponses maps a slice of tickets to display projections.
func ToResponses(list []Ticket) []TicketResponse {
	out := make([]TicketResponse, len(list))
	for i := range list {
		out[i] = list[i].ToResponse()
	}
	return out
}
