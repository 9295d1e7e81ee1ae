package requests

// PartnerApplicationRequest is the body of POST /v1/partners/apply.
// Force confirms the submission after a duplicate warning was shown.
type PartnerApplicationRequest struct {
	CompanyName  string   `json:"company_name" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Municipality string   `json:"municipality,omitempty"`
	Address      string   `json:"address" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Email        *string  `json:"email,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	WorkingHours string   `json:"working_hours,omitempty"`
	Description  string   `json:"description,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Force        bool     `json:"force,omitempty"`
}

// FavoriteToggleRequest is the body of POST /v1/users/:userID/favorites.
type FavoriteToggleRequest struct {
	FirmID string `json:"firm_id" binding:"required"`
}

// FollowToggleRequest is the body of POST /v1/users/:userID/follows.
type FollowToggleRequest struct {
	Category string `json:"category" binding:"required"`
}
