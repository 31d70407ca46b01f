package models

import "time"

type Message struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExchangeID uint   `gorm:"not null;index" json:"exchange_id"`
	SenderID   uint   `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint   `gorm:"not null;index" json:"receiver_id"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsRead     bool   `gorm:"not null;default:false" json:"is_read"`

	Exchange Exchange `gorm:"foreignKey:ExchangeID" json:"exchange,omitempty"`
	Sender   User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
