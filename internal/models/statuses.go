package models

type UserRole string
type PropertyType string
type PropertyStatus string
type BookingStatus string
type PaymentStatus string

const (
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"

	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHotel     PropertyType = "hotel"

	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusSold        PropertyStatus = "sold"
	PropertyStatusRented      PropertyStatus = "rented"
	PropertyStatusUnavailable PropertyStatus = "unavailable"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)
