package models

import "time"

// Message - сообщение между клиентом и администрацией.
// Непрочитанным считается сообщение без ReadAt от противоположной роли.
// У сообщения клиента в поддержку адресата нет, RecipientID пустой.
type Message struct {
	BaseModel
	SenderID    string     `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID *string    `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	SenderRole  UserRole   `gorm:"type:varchar(20);not null" json:"sender_role"`
	Body        string     `gorm:"not null" json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}
