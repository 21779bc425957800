package model

import "time"

// User account types.
const (
	UserTypeOfficer = "public_officer"
	UserTypeGeneral = "general_user"
)

// User is an account in the identity boundary. Other records reference it
// only through UID.
type User struct {
	UID           string    `gorm:"primaryKey;size:64" json:"uid"`
	Email         string    `gorm:"uniqueIndex;size:256;not null" json:"email"`
	DisplayName   string    `gorm:"size:128" json:"display_name"`
	PasswordHash  string    `gorm:"size:128;not null" json:"-"`
	UserType      string    `gorm:"size:32;not null" json:"user_type"`
	TermsAgreed   bool      `gorm:"not null" json:"terms_agreed"`
	EmailVerified bool      `gorm:"not null" json:"email_verified"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
