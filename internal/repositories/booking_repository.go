package repositories

import (
	"errors"
	"time"

	"villa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Booking, error)
	UpdateStatus(db *gorm.DB, id string, status models.BookingStatus) error
	CountActiveByUser(db *gorm.DB, userID string) (int64, error)
	ExpirePending(db *gorm.DB, before time.Time) (int64, error)
}

type bookingRepository struct{}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	err := db.Preload("Property").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(db *gorm.DB, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Property").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) UpdateStatus(db *gorm.DB, id string, status models.BookingStatus) error {
	result := db.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// CountActiveByUser считает только pending и confirmed - для дашборда
func (r *bookingRepository) CountActiveByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("user_id = ? AND status IN ?", userID,
			[]models.BookingStatus{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Count(&count).Error
	return count, err
}

// ExpirePending отменяет неподтвержденные брони с прошедшей датой заезда.
// Вызывается фоновым воркером.
func (r *bookingRepository) ExpirePending(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Model(&models.Booking{}).
		Where("status = ? AND check_in < ?", models.BookingStatusPending, before).
		Updates(map[string]interface{}{
			"status":     models.BookingStatusCancelled,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
