package models

import "time"

// AdminMessage is a flat admin-to-admin chat entry.
type AdminMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Content    string `gorm:"size:1000;not null" json:"content"`
	SenderID   uint   `gorm:"not null" json:"sender_id"`
	SenderName string `gorm:"size:100;not null" json:"sender_name"`

	CreatedAt time.Time `json:"created_at"`
}
