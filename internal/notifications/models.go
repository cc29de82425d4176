package notifications

// BannerStatus is the publish-state flag on a site banner.
type BannerStatus string

const (
	BannerStatusActive   BannerStatus = "active"
	BannerStatusInactive BannerStatus = "inactive"
)

// Banner is the site-wide announcement strip shown above public pages.
type Banner struct {
	ID        string       `json:"_id"`
	Message   string       `json:"message"`
	Status    BannerStatus `json:"status"`
	CreatedAt string       `json:"createdAt,omitempty"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}

type CreateBannerRequest struct {
	Message string `json:"message" binding:"required,min=3,max=500"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateBannerRequest struct {
	Message *string `json:"message" binding:"omitempty,min=3,max=500"`
	Status  *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ActiveBanner returns the first active banner in the list. The API is
// expected to keep at most one active; if several slip through, the
// first wins.
func ActiveBanner(list []Banner) (Banner, bool) {
	for _, b := range list {
		if b.Status == BannerStatusActive {
			return b, true
		}
	}
	return Banner{}, false
}
