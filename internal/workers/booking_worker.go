package workers

import (
	"context"
	"time"

	"villa_backend/internal/logger"
	"villa_backend/internal/repositories"

	"gorm.io/gorm"
)

type BookingWorker struct {
	db          *gorm.DB
	bookingRepo repositories.BookingRepository
	interval    time.Duration
}

func NewBookingWorker(db *gorm.DB, bookingRepo repositories.BookingRepository) *BookingWorker {
	return &BookingWorker{
		db:          db,
		bookingRepo: bookingRepo,
		interval:    time.Hour,
	}
}

// Start запускает фоновые задачи бронирований
func (w *BookingWorker) Start(ctx context.Context) {
	go w.expirePendingBookings(ctx)
}

// expirePendingBookings отменяет pending брони с прошедшей датой заезда
func (w *BookingWorker) expirePendingBookings(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Booking worker stopped")
			return
		case <-ticker.C:
			expired, err := w.bookingRepo.ExpirePending(w.db, time.Now())
			if err != nil {
				logger.WithError(err).Error("Failed to expire pending bookings")
			} else if expired > 0 {
				logger.Info("Cancelled expired pending bookings", "count", expired)
			}
		}
	}
}
