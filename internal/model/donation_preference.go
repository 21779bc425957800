package model

import "time"

// DonationPreference is a standing declaration by a donor of what they are
// willing to supply. Removal flips Active instead of deleting the row.
type DonationPreference struct {
	ID        string    `gorm:"primaryKey;size:64" json:"donation_id"`
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	ItemName  string    `gorm:"size:256;not null" json:"item_name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"size:32;not null" json:"unit"`
	Active    bool      `gorm:"not null;index" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
