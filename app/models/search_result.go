package models

// FirmSummary is the cache- and wire-safe projection of a Firm inside search
// results. DistanceKm is nil when unknown (encoding/json cannot carry +Inf).
type FirmSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Municipality *string  `json:"municipality,omitempty"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        *string  `json:"email,omitempty"`
	Services     []string `json:"services"`
	DistanceKm   *float64 `json:"distance_km"`
}

// Summary projects a Firm into its result form.
func (f *Firm) Summary() FirmSummary {
	s := FirmSummary{
		ID:           f.ID,
		Name:         f.Name,
		City:         f.City,
		Municipality: f.Municipality,
		Address:      f.Address,
		Phone:        f.Phone,
		Email:        f.Email,
		Services:     f.Services,
	}
	if f.HasKnownDistance() {
		d := f.DistanceKm
		s.DistanceKm = &d
	}
	return s
}

// ResultBucket is one paged section of search results (near or far).
type ResultBucket struct {
	Items      []FirmSummary `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// SearchResult is the complete outcome of one directory search: both buckets
// sliced to the shared page index, plus the pager window. PageNumbers uses 0
// as the ellipsis marker (see internal/pager).
type SearchResult struct {
	Query       string       `json:"query"`
	City        string       `json:"city,omitempty"`
	RadiusKm    float64      `json:"radius_km"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	Near        ResultBucket `json:"near"`
	Far         ResultBucket `json:"far"`
	PageNumbers []int        `json:"page_numbers"`
}
