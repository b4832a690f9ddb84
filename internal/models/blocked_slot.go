package models

import "time"

// BlockedSlot is an administrator blackout. A nil StartTime blocks the
// whole day; a nil EndTime defaults the block to 30 minutes from StartTime.
// A nil BarberID applies the block to every barber.
type BlockedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      string  `gorm:"size:10;index;not null" json:"date"`
	StartTime *string `gorm:"size:8" json:"start_time"`
	EndTime   *string `gorm:"size:8" json:"end_time"`

	BarberID *uint   `json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
