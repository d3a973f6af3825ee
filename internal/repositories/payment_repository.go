package repositories

import (
	"villa_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	ListByUser(db *gorm.DB, userID string) ([]models.Payment, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
	TotalCompleted(db *gorm.DB) (float64, error)
	RecentWithUsers(db *gorm.DB, limit int) ([]models.Payment, error)
}

type paymentRepository struct{}

func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) ListByUser(db *gorm.DB, userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Payment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// TotalCompleted - суммарная выручка по завершенным платежам
func (r *paymentRepository) TotalCompleted(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// RecentWithUsers - последние транзакции с данными пользователя,
// для админского дашборда
func (r *paymentRepository) RecentWithUsers(db *gorm.DB, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
