package models

import "time"

const (
	ExchangePending   = "pending"
	ExchangeAccepted  = "accepted"
	ExchangeCompleted = "completed"
	ExchangeCancelled = "cancelled"
)

type Exchange struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	SkillID   uint `gorm:"not null;index" json:"skill_id"`
	LearnerID uint `gorm:"not null;index" json:"learner_id"`
	TeacherID uint `gorm:"not null;index" json:"teacher_id"`

	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	Notes     *string   `gorm:"type:text" json:"notes"`

	Skill   Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Learner User  `gorm:"foreignKey:LearnerID" json:"learner,omitempty"`
	Teacher User  `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`

	Messages []Message `gorm:"foreignKey:ExchangeID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:ExchangeID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTerminal reports whether the exchange can no longer change state.
func (e *Exchange) IsTerminal() bool {
	return e.Status == ExchangeCompleted || e.Status == ExchangeCancelled
}

func (e *Exchange) IsParticipant(userID uint) bool {
	return e.LearnerID == userID || e.TeacherID == userID
}

// OtherParticipant returns the counterpart of userID in this exchange.
func (e *Exchange) OtherParticipant(userID uint) uint {
	if userID == e.LearnerID {
		return e.TeacherID
	}
	return e.LearnerID
}
