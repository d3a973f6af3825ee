package repositories

import (
	"errors"

	"villa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAlreadySaved = errors.New("property already saved")

type SavedPropertyRepository interface {
	Save(db *gorm.DB, userID, propertyID string) error
	Unsave(db *gorm.DB, userID, propertyID string) error
	ListByUser(db *gorm.DB, userID string) ([]models.Property, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type savedPropertyRepository struct{}

func NewSavedPropertyRepository() SavedPropertyRepository {
	return &savedPropertyRepository{}
}

func (r *savedPropertyRepository) Save(db *gorm.DB, userID, propertyID string) error {
	var existing models.SavedProperty
	err := db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	createErr := db.Create(&models.SavedProperty{
		UserID:     userID,
		PropertyID: propertyID,
	}).Error
	// Гонка двух одновременных сохранений упирается в составной индекс
	if errors.Is(createErr, gorm.ErrDuplicatedKey) {
		return ErrAlreadySaved
	}
	return createErr
}

func (r *savedPropertyRepository) Unsave(db *gorm.DB, userID, propertyID string) error {
	return db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.SavedProperty{}).Error
}

// ListByUser возвращает сохраненные объекты пользователя, недавно
// сохраненные первыми. Деактивированные объекты отфильтровываются.
func (r *savedPropertyRepository) ListByUser(db *gorm.DB, userID string) ([]models.Property, error) {
	var properties []models.Property
	err := db.Joins("JOIN saved_properties sp ON sp.property_id = properties.id").
		Where("sp.user_id = ? AND properties.is_active = ?", userID, true).
		Order("sp.saved_at DESC").
		Preload("Images").
		Find(&properties).Error
	return properties, err
}

func (r *savedPropertyRepository) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.SavedProperty{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
