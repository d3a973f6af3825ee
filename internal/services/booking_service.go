package services

import (
	"fmt"
	"math"
	"time"

	"villa_backend/internal/email"
	"villa_backend/internal/logger"
	"villa_backend/internal/models"
	"villa_backend/internal/repositories"
	"villa_backend/internal/services/dto"
	"villa_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateBookingRequest) (*models.Booking, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Booking, error)
	Cancel(db *gorm.DB, userID, bookingID string) (*models.Booking, error)
}

type bookingServiceImpl struct {
	bookingRepo  repositories.BookingRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	emailSender  email.Provider
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	emailSender email.Provider,
) BookingService {
	return &bookingServiceImpl{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		emailSender:  emailSender,
	}
}

// Create оформляет бронь. Сумма считается по ночам от цены объекта,
// минимум одна ночь. Письмо-подтверждение уходит в фоне.
func (s *bookingServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateBookingRequest) (*models.Booking, error) {
	property, err := s.propertyRepo.GetByID(db, req.PropertyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if property.Status != models.PropertyStatusAvailable {
		return nil, apperrors.ErrConflict(nil, "booking", "property is not available for booking")
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}

	nights := math.Ceil(req.CheckOut.Sub(req.CheckIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	booking := &models.Booking{
		UserID:      userID,
		PropertyID:  property.ID,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      guests,
		TotalAmount: nights * property.Price,
		Status:      models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}
	booking.Property = property

	s.sendConfirmation(db, booking, property)

	return booking, nil
}

func (s *bookingServiceImpl) ListByUser(db *gorm.DB, userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

// Cancel отменяет бронь владельца. Отменить можно только pending
// или confirmed бронь.
func (s *bookingServiceImpl) Cancel(db *gorm.DB, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if booking.UserID != userID {
		return nil, apperrors.ErrBookingNotFound
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	if err := s.bookingRepo.UpdateStatus(db, booking.ID, models.BookingStatusCancelled); err != nil {
		return nil, apperrors.InternalError(err)
	}

	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

// sendConfirmation шлет письмо-подтверждение, ошибки только логируются
func (s *bookingServiceImpl) sendConfirmation(db *gorm.DB, booking *models.Booking, property *models.Property) {
	if s.emailSender == nil {
		return
	}

	user, err := s.userRepo.FindByID(db, booking.UserID)
	if err != nil {
		logger.WithError(err).Warn("booking confirmation: failed to load user")
		return
	}

	msg := &email.Email{
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Booking confirmation - %s", property.Title),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour booking for %s is received.\nCheck-in: %s\nCheck-out: %s\nGuests: %d\nTotal: %.2f\n\nWe will contact you shortly.",
			user.FirstName,
			property.Title,
			booking.CheckIn.Format(time.DateOnly),
			booking.CheckOut.Format(time.DateOnly),
			booking.Guests,
			booking.TotalAmount,
		),
	}

	go func() {
		if err := s.emailSender.Send(msg); err != nil {
			logger.WithError(err).Warn("booking confirmation: failed to send email")
		}
	}()
}
