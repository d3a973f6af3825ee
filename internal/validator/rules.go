package validator

import (
	"log"

	"villa_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации
// в переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go
	mustRegister("is-property-type", validatePropertyType)
	mustRegister("is-property-status", validatePropertyStatus)
	mustRegister("is-booking-status", validateBookingStatus)
}

// --- Функции валидации ---

func validatePropertyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые обрабатывает 'required'
	}
	switch models.PropertyType(value) {
	case models.PropertyTypeHouse, models.PropertyTypeApartment, models.PropertyTypeHotel:
		return true
	default:
		return false
	}
}

func validatePropertyStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PropertyStatus(value) {
	case models.PropertyStatusAvailable, models.PropertyStatusSold,
		models.PropertyStatusRented, models.PropertyStatusUnavailable:
		return true
	default:
		return false
	}
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BookingStatus(value) {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCancelled, models.BookingStatusCompleted:
		return true
	default:
		return false
	}
}
