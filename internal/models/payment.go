package models

import "gorm.io/datatypes"

type Payment struct {
	BaseModel
	UserID    string        `gorm:"type:uuid;not null;index" json:"user_id"`
	BookingID *string       `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Method    string        `gorm:"type:varchar(30)" json:"method"`
	Status    PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	// ReceiptID присваивается провайдером только успешным транзакциям
	ReceiptID string         `json:"receipt_id,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
