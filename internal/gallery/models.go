package gallery

// GalleryItem is a photo in the public gallery grid.
type GalleryItem struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category,omitempty"`
	EventID     string `json:"eventId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type CreateGalleryItemRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"imageUrl" binding:"required,url"`
	Category    string `json:"category" binding:"max=100"`
	EventID     string `json:"eventId"`
}

type UpdateGalleryItemRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	EventID     *string `json:"eventId"`
}

// FilterByCategory returns the items matching category, or all items
// when category is empty. Order is preserved.
func FilterByCategory(list []GalleryItem, category string) []GalleryItem {
	if category == "" {
		return list
	}
	var filtered []GalleryItem
	for _, item := range list {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
