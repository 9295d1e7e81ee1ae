package models

import "time"

// Application status constants.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Duplicate kinds reported by the intake check.
const (
	DupTypePhone   = "phone"
	DupTypeAddress = "address"
)

// PartnerApplication is a firm's registration request. The *Norm fields are
// derived fingerprints used for duplicate detection and are stored alongside
// the raw values so the check never depends on re-normalization at read time.
type PartnerApplication struct {
	ID           string   `bson:"_id" json:"id"`
	CompanyName  string   `bson:"company_name" json:"company_name"`
	City         string   `bson:"city" json:"city"`
	CityNorm     string   `bson:"city_norm" json:"city_norm"`
	Municipality string   `bson:"municipality,omitempty" json:"municipality,omitempty"`
	Address      string   `bson:"address" json:"address"`
	AddressNorm  string   `bson:"address_norm" json:"address_norm"`
	Phone        string   `bson:"phone" json:"phone"`
	PhoneNorm    string   `bson:"phone_norm" json:"phone_norm"`
	Email        *string  `bson:"email,omitempty" json:"email,omitempty"`
	Tags         []string `bson:"tags" json:"tags"`
	WorkingHours string   `bson:"working_hours,omitempty" json:"working_hours,omitempty"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Lat          *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng          *float64 `bson:"lng,omitempty" json:"lng,omitempty"`

	Status       string    `bson:"status" json:"status"`
	DupConfirmed bool      `bson:"dup_confirmed" json:"dup_confirmed"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// DuplicateMatch describes an existing application that looks like the same
// firm as a new submission.
type DuplicateMatch struct {
	ApplicationID string `json:"application_id"`
	CompanyName   string `json:"company_name"`
	DupType       string `json:"dup_type"` // phone or address
}
