package models

import "time"

// PasswordResetToken stores only the bcrypt hash of the emailed token. One
// row per email; rows are consumed on successful reset or expiry detection
// and swept by the cleanup job after 24 hours.
type PasswordResetToken struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	TokenHash string `gorm:"size:255;not null"`

	CreatedAt time.Time
}
