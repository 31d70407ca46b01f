package models

import "time"

type Certificate struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	LearnerID uint `gorm:"not null;index:idx_certificate_learner_skill,unique" json:"learner_id"`
	SkillID   uint `gorm:"not null;index:idx_certificate_learner_skill,unique" json:"skill_id"`
	TeacherID uint `gorm:"not null" json:"teacher_id"`

	SkillTitle     string    `gorm:"size:255;not null" json:"skill_title"`
	CompletionDate time.Time `gorm:"not null" json:"completion_date"`
	CertificateURL string    `gorm:"size:512;not null" json:"certificate_url"`

	Learner User  `gorm:"foreignKey:LearnerID" json:"-"`
	Skill   Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
