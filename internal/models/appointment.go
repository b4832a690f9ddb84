package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Calendar position. Date is "2006-01-02"; times are normalized
	// "15:04:05" strings in shop-local time.
	Date      string `gorm:"size:10;index:idx_appt_barber_date,priority:2" json:"date"`
	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`

	Status string `gorm:"size:20;index" json:"status"`

	// UserID is nil for pure admin blackout entries (status BLOCKED).
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BarberID uint   `gorm:"index:idx_appt_barber_date,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	TotalPrice float64 `json:"total_price"`

	AdminViewed   bool `gorm:"default:false" json:"admin_viewed"`
	RewardApplied bool `gorm:"default:false" json:"reward_applied"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
