package dto

import "time"

// CreateBookingRequest - бронирование объекта клиентом
type CreateBookingRequest struct {
	PropertyID string    `json:"property_id" binding:"required,uuid"`
	CheckIn    time.Time `json:"check_in" binding:"required"`
	CheckOut   time.Time `json:"check_out" binding:"required,gtfield=CheckIn"`
	Guests     int       `json:"guests" binding:"omitempty,min=1"`
}
