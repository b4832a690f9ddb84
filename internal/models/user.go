package models

import "time"

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100" json:"name"`
	FirstName string `gorm:"size:100" json:"first_name"`
	Phone     string `gorm:"size:20;index" json:"phone"`
	Email     string `gorm:"size:100;index" json:"email"`

	// Credentials are only set for staff/admin accounts. Guests get the
	// phone (or email) as username and no password.
	Username     string `gorm:"size:100;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:'CLIENT'" json:"role"`

	// Loyalty counters. All three stay >= 0 at all times.
	TotalAppointments int `gorm:"default:0" json:"total_appointments"`
	AvailableRewards  int `gorm:"default:0" json:"available_rewards"`
	UsedRewards       int `gorm:"default:0" json:"used_rewards"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
