package model

import "time"

// PushSubscription holds a donor's browser push subscription, used to alert
// them when a new relief request matches their donation preferences.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
