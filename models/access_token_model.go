package models

import "time"

// AccessToken is the revocation record behind a bearer JWT. The token itself
// is never stored; the row is looked up by the jti claim and deleted on
// logout, which invalidates the token before its exp.
type AccessToken struct {
	ID     uint   `gorm:"primaryKey"`
	JTI    string `gorm:"size:36;not null;uniqueIndex;column:jti"`
	UserID uint   `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
}
