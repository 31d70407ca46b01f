package models

import "time"

type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TeacherID   uint   `gorm:"not null;index" json:"teacher_id"`
	CategoryID  uint   `gorm:"not null;index" json:"category_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	// beginner, intermediate or advanced
	Level       string `gorm:"size:20;not null" json:"level"`
	Duration    string `gorm:"size:100;not null" json:"duration"`
	MaxStudents int    `gorm:"not null" json:"max_students"`

	// Derived from reviews, never edited directly.
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	ImageURL *string `gorm:"size:255" json:"image_url"`

	Teacher  User     `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Exchanges []Exchange `gorm:"foreignKey:SkillID" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:SkillID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
