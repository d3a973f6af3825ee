package services

import (
	"encoding/json"

	"villa_backend/internal/logger"
	"villa_backend/internal/models"
	"villa_backend/internal/repositories"
	"villa_backend/internal/services/dto"
	"villa_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentService interface {
	Process(db *gorm.DB, userID string, req *dto.CreatePaymentRequest) (*models.Payment, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Payment, error)
}

type paymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
	provider    PaymentProvider
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	provider PaymentProvider,
) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		provider:    provider,
	}
}

// Process проводит платеж через провайдера. Транзакция пишется в базу
// в любом исходе: отклоненный платеж сохраняется со статусом failed,
// наружу уходит ErrPaymentDeclined. Успешный платеж по брони
// подтверждает ее.
func (s *paymentServiceImpl) Process(db *gorm.DB, userID string, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	var booking *models.Booking
	if req.BookingID != nil {
		found, err := s.bookingRepo.FindByID(db, *req.BookingID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrBookingNotFound) {
				return nil, apperrors.ErrBookingNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		if found.UserID != userID {
			return nil, apperrors.ErrBookingNotFound
		}
		booking = found
	}

	result := s.provider.Charge(req.Amount, req.Method)

	metadata, err := json.Marshal(map[string]string{"provider_message": result.Message})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	payment := &models.Payment{
		UserID:   userID,
		Amount:   req.Amount,
		Method:   req.Method,
		Metadata: datatypes.JSON(metadata),
	}
	if booking != nil {
		payment.BookingID = &booking.ID
	}

	if result.Success {
		payment.Status = models.PaymentStatusCompleted
		payment.ReceiptID = result.ReceiptID
	} else {
		payment.Status = models.PaymentStatusFailed
	}

	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if !result.Success {
		logger.Warn("payment declined", "user_id", userID, "amount", req.Amount)
		return nil, apperrors.ErrPaymentDeclined
	}

	if booking != nil && booking.Status == models.BookingStatusPending {
		if err := s.bookingRepo.UpdateStatus(db, booking.ID, models.BookingStatusConfirmed); err != nil {
			logger.WithError(err).Error("failed to confirm booking after payment")
		}
	}

	return payment, nil
}

func (s *paymentServiceImpl) ListByUser(db *gorm.DB, userID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}
