package models

import "time"

// PushSubscription stores a browser web-push registration. The engine only
// records subscriptions and queues notification requests; delivery is owned
// by an external worker.
type PushSubscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Endpoint string `gorm:"size:500;uniqueIndex;not null" json:"endpoint"`
	P256dh   string `gorm:"size:255;not null" json:"p256dh"`
	Auth     string `gorm:"size:255;not null" json:"auth"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
