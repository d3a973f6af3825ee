package services

import (
	"villa_backend/internal/repositories"
	"villa_backend/internal/services/dto"
	"villa_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DashboardService interface {
	StatsFor(db *gorm.DB, userID string) (*dto.DashboardStats, error)
	AdminStats(db *gorm.DB) (*dto.AdminStats, error)
}

type dashboardServiceImpl struct {
	savedRepo    repositories.SavedPropertyRepository
	bookingRepo  repositories.BookingRepository
	paymentRepo  repositories.PaymentRepository
	messageRepo  repositories.MessageRepository
	userRepo     repositories.UserRepository
	propertyRepo repositories.PropertyRepository
}

func NewDashboardService(
	savedRepo repositories.SavedPropertyRepository,
	bookingRepo repositories.BookingRepository,
	paymentRepo repositories.PaymentRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	propertyRepo repositories.PropertyRepository,
) DashboardService {
	return &dashboardServiceImpl{
		savedRepo:    savedRepo,
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

// StatsFor - счетчики личного кабинета пользователя.
// bookingsCount учитывает только pending и confirmed,
// messagesCount - непрочитанные от администрации.
func (s *dashboardServiceImpl) StatsFor(db *gorm.DB, userID string) (*dto.DashboardStats, error) {
	savedCount, err := s.savedRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	bookingsCount, err := s.bookingRepo.CountActiveByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	paymentsCount, err := s.paymentRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	messagesCount, err := s.messageRepo.CountUnreadForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		SavedCount:    savedCount,
		BookingsCount: bookingsCount,
		PaymentsCount: paymentsCount,
		MessagesCount: messagesCount,
	}, nil
}

// AdminStats - агрегаты по платформе плюс последние транзакции
func (s *dashboardServiceImpl) AdminStats(db *gorm.DB) (*dto.AdminStats, error) {
	totalProperties, err := s.propertyRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalUsers, err := s.userRepo.CountClients(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalRevenue, err := s.paymentRepo.TotalCompleted(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unreadMessages, err := s.messageRepo.CountUnreadFromClients(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recent, err := s.paymentRepo.RecentWithUsers(db, 5)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminStats{
		TotalProperties:    totalProperties,
		TotalUsers:         totalUsers,
		TotalRevenue:       totalRevenue,
		UnreadMessages:     unreadMessages,
		RecentTransactions: recent,
	}, nil
}
