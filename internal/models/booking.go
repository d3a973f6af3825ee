package models

import "time"

type Booking struct {
	BaseModel
	UserID      string        `gorm:"type:uuid;not null;index" json:"user_id"`
	PropertyID  string        `gorm:"type:uuid;not null;index" json:"property_id"`
	CheckIn     time.Time     `gorm:"not null" json:"check_in"`
	CheckOut    time.Time     `gorm:"not null" json:"check_out"`
	Guests      int           `gorm:"default:1" json:"guests"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
