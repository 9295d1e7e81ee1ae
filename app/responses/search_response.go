package responses

import (
	"github.com/servis-mreza/directory/app/models"
)

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Result           *models.SearchResult `json:"result"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
	CacheHit         bool                 `json:"cache_hit"`
}

// FirmResponse wraps a single firm detail.
type FirmResponse struct {
	Firm *models.Firm `json:"firm"`
}

// CatalogResponse lists the category catalog.
type CatalogResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}

// PartnerApplyResponse is the outcome of an application submission.
type PartnerApplyResponse struct {
	Accepted      bool                   `json:"accepted"`
	ApplicationID string                 `json:"application_id,omitempty"`
	Duplicate     *models.DuplicateMatch `json:"duplicate,omitempty"`
	Message       string                 `json:"message"`
}

// FavoritesResponse lists a user's starred firms.
type FavoritesResponse struct {
	Favorites []models.Favorite `json:"favorites"`
	Total     int               `json:"total"`
}

// FollowsResponse lists a user's followed categories.
type FollowsResponse struct {
	Follows []models.CategoryFollow `json:"follows"`
	Total   int                     `json:"total"`
}

// ToggleResponse reports the state after a favorite or follow toggle.
type ToggleResponse struct {
	Active bool `json:"active"`
}

// ErrorResponse is the shared error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse is the shared generic success body.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheckResponse reports service health.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// AdminStatsResponse is the admin stats body.
type AdminStatsResponse struct {
	CacheHitRate  float64 `json:"cache_hit_rate"`
	CacheHits     int64   `json:"cache_hits"`
	CacheMisses   int64   `json:"cache_misses"`
	CachedEntries int64   `json:"cached_entries"`
	FirmCount     int64   `json:"firm_count"`
	Applications  int64   `json:"applications"`
	UptimeSeconds int64   `json:"uptime_seconds"`
}
