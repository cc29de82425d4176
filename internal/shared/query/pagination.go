package query

// Pagination is the metadata block returned alongside every paginated
// list, matching the ticketing API contract.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPagination derives consistent metadata from totals. TotalPages is
// floored at 1 so an empty list still renders as page 1 of 1.
func NewPagination(totalItems, currentPage, itemsPerPage int) Pagination {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultLimit
	}
	if currentPage < 1 {
		currentPage = 1
	}

	totalPages := (totalItems + itemsPerPage - 1) / itemsPerPage
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		CurrentPage:     currentPage,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    itemsPerPage,
		HasNextPage:     currentPage < totalPages,
		HasPreviousPage: currentPage > 1,
	}
}

// Result pairs a page of items with its pagination metadata.
type Result[T any] struct {
	Items      []T
	Pagination Pagination
}
