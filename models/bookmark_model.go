package models

import "time"

type Bookmark struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;index:idx_bookmark_user_skill,unique" json:"user_id"`
	SkillID uint `gorm:"not null;index:idx_bookmark_user_skill,unique" json:"skill_id"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
