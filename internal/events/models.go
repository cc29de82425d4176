package events

import (
	"time"

	"ticketdesk/internal/countdown"
	"ticketdesk/internal/shared/utils/format"
)

// Event as served by the ticketing API.
type Event struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	Venue       string      `json:"venue,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// EventResponse is the event projection served to pages, with display
// strings precomputed.
type EventResponse struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	DateDisplay string      `json:"dateDisplay"`
	CardDate    string      `json:"cardDate"`
	Venue       string      `json:"venue,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// FeaturedEvent pairs the selected event with a countdown snapshot for
// the home page.
type FeaturedEvent struct {
	Event     EventResponse       `json:"event"`
	Countdown countdown.Remaining `json:"countdown"`
	Upcoming  bool                `json:"upcoming"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=3,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Date        time.Time `json:"date" binding:"required,futuredate"`
	Venue       string    `json:"venue" binding:"max=255"`
	ImageURL    string    `json:"imageUrl" binding:"omitempty,url"`
	Status      string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Date        *time.Time `json:"date"`
	Venue       *string    `json:"venue" binding:"omitempty,max=255"`
	ImageURL    *string    `json:"imageUrl" binding:"omitempty,url"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// EventListQuery is the admin list request, bound from query params.
type EventListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	Status    string `form:"status" binding:"omitempty,oneof=active inactive"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
}

// ToResponse converts an Event to its display projection.
func (e *Event) ToResponse() EventResponse {
	iso := e.Date.Format(time.RFC3339)
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		DateDisplay: format.DateTime(iso),
		CardDate:    format.CardDate(iso),
		Venue:       e.Venue,
		ImageURL:    e.ImageURL,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToResponses maps a slice of events to display projections.
func ToResponses(list []Event) []EventResponse {
	out := make([]EventResponse, len(list))
	for i := range list {
		out[i] = list[i].ToResponse()
	}
	return out
}
