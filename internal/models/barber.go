package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Speciality  string `gorm:"size:100" json:"speciality"`
	Photo       string `gorm:"size:255" json:"photo"`
	Description string `gorm:"size:1000" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
