package models

import (
	"math"
	"time"
)

// UnknownDistance is the DistanceKm value for firms whose distance cannot be
// computed (missing coordinates or no user location). Positive infinity sorts
// such firms last and keeps them out of the "near" bucket by plain comparison.
var UnknownDistance = math.Inf(1)

// Firm is one directory entry. Municipality, Email and the coordinates are
// optional; a nil Lat/Lng pair means the firm cannot be distance-ranked.
type Firm struct {
	ID           string   `bson:"_id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	City         string   `bson:"city" json:"city"`
	Municipality *string  `bson:"municipality,omitempty" json:"municipality,omitempty"`
	Address      string   `bson:"address" json:"address"`
	Phone        string   `bson:"phone" json:"phone"`
	Email        *string  `bson:"email,omitempty" json:"email,omitempty"`
	Services     []string `bson:"services" json:"services"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	WorkingHours string   `bson:"working_hours,omitempty" json:"working_hours,omitempty"`
	Lat          *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng          *float64 `bson:"lng,omitempty" json:"lng,omitempty"`

	SourceApplicationID *string   `bson:"source_application_id,omitempty" json:"source_application_id,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`

	// DistanceKm is computed per request from the caller's location and never
	// persisted. UnknownDistance when coordinates are unavailable.
	DistanceKm float64 `bson:"-" json:"-"`
}

// Location returns the firm coordinates, ok=false when either half is missing.
func (f *Firm) Location() (lat, lng float64, ok bool) {
	if f.Lat == nil || f.Lng == nil {
		return 0, 0, false
	}
	return *f.Lat, *f.Lng, true
}

// Area returns the text used for city filtering: municipality when present,
// otherwise the city (older records carry only a city).
func (f *Firm) Area() string {
	if f.Municipality != nil && *f.Municipality != "" {
		return *f.Municipality
	}
	return f.City
}

// HasKnownDistance reports whether DistanceKm is a finite value.
func (f *Firm) HasKnownDistance() bool {
	return !math.IsInf(f.DistanceKm, 1) && !math.IsNaN(f.DistanceKm)
}
