package response

import "ticketdesk/internal/shared/query"

// APIResponse is the envelope served to the web UI. It mirrors the
// ticketing API contract so pages can treat gateway and upstream
// responses uniformly.
type APIResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Errors     interface{}       `json:"errors,omitempty"`
}
