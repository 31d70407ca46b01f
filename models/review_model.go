package models

import "time"

type Review struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ExchangeID *uint `gorm:"index" json:"exchange_id"`
	SkillID    uint  `gorm:"not null;index" json:"skill_id"`
	ReviewerID uint  `gorm:"not null;index" json:"reviewer_id"`
	RevieweeID *uint `gorm:"index" json:"reviewee_id"`

	Rating  int     `gorm:"not null" json:"rating"`
	Comment *string `gorm:"type:text" json:"comment"`

	Skill    Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Reviewer User  `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee User  `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
