package models

import "time"

// Service is a bookable catalog entry. DurationMin is informational:
// slot and conflict math run on a fixed 30-minute unit regardless of it.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
