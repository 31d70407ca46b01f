package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// learner, teacher or both
	Role   string `gorm:"size:20;not null;default:'learner'" json:"role"`
	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	Bio       *string `gorm:"size:500" json:"bio"`
	AvatarURL *string `gorm:"size:255" json:"avatar_url"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	EmailVerifiedAt *time.Time `json:"email_verified_at"`

	Skills           []Skill    `gorm:"foreignKey:TeacherID" json:"skills,omitempty"`
	LearnerExchanges []Exchange `gorm:"foreignKey:LearnerID" json:"-"`
	TeacherExchanges []Exchange `gorm:"foreignKey:TeacherID" json:"-"`
	Bookmarks        []Bookmark `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasVerifiedEmail() bool {
	return u.EmailVerifiedAt != nil
}

// CanTeach reports whether the user may list skills.
func (u *User) CanTeach() bool {
	return u.Role == "teacher" || u.Role == "both"
}
