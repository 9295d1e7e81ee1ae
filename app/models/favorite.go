package models

import "time"

// Favorite links a user to a firm they starred.
type Favorite struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	FirmID    string    `bson:"firm_id" json:"firm_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CategoryFollow links a user to a category key they follow.
type CategoryFollow struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Category  string    `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
