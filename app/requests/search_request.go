package requests

// SearchRequest is the body of POST /v1/search. Query may be empty; an empty
// query yields empty result buckets rather than an error.
type SearchRequest struct {
	Query    string         `json:"query"`
	City     string         `json:"city,omitempty"`
	RadiusKm float64        `json:"radius_km,omitempty"`
	Location *LocationParam `json:"location,omitempty"`
	Page     int            `json:"page,omitempty"`
	PageSize int            `json:"page_size,omitempty"`
	UseCache bool           `json:"use_cache,omitempty"`
}

// LocationParam is the caller's position from the browser geolocation API.
type LocationParam struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}
