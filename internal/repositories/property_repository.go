package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"villa_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	// ErrImageInsertFailed - объект создан, но часть картинок не записалась.
	// Строка объекта при этом не откатывается.
	ErrImageInsertFailed = errors.New("property created but image insert failed")
)

// PropertyWithMeta - строка листинга: объект плюс количество сохранений.
// Одна строка на объект независимо от числа картинок.
type PropertyWithMeta struct {
	models.Property
	SavedCount int64 `json:"saved_count"`
}

type PropertyRepository interface {
	List(db *gorm.DB, filter PropertyFilter, page, pageSize int) ([]PropertyWithMeta, error)
	GetByID(db *gorm.DB, id string) (*models.Property, error)
	Create(db *gorm.DB, property *models.Property, imageURLs []string) error
	Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Property, error)
	Deactivate(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)
}

type propertyRepository struct{}

func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{}
}

// List возвращает активные объекты, новые первыми.
// WHERE собирается из фрагментов PropertyFilter.Build, значения
// уходят только через позиционные параметры.
func (r *propertyRepository) List(db *gorm.DB, filter PropertyFilter, page, pageSize int) ([]PropertyWithMeta, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT p.*, (SELECT COUNT(*) FROM saved_properties sp WHERE sp.property_id = p.id) AS saved_count
FROM properties p
WHERE p.is_active = true`)

	fragments, args := filter.Build(1)
	for _, frag := range fragments {
		sb.WriteString(" AND ")
		sb.WriteString(frag)
	}

	sb.WriteString(" ORDER BY p.created_at DESC")

	if pageSize > 0 {
		n := len(args) + 1
		sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1))
		args = append(args, pageSize, (page-1)*pageSize)
	}

	var rows []PropertyWithMeta
	if err := db.Raw(sb.String(), args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	if err := r.attachImages(db, rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// GetByID отдает только активные объекты. Деактивированный объект
// не виден никому, в том числе по админскому токену.
func (r *propertyRepository) GetByID(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	err := db.Preload("Images").
		First(&property, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// Create пишет строку объекта, затем по одной строке на картинку.
// Шаги намеренно не обернуты в общую транзакцию: если вставка картинки
// упала после вставки объекта, объект остается, ошибка репортится.
func (r *propertyRepository) Create(db *gorm.DB, property *models.Property, imageURLs []string) error {
	if err := db.Create(property).Error; err != nil {
		return err
	}

	for _, url := range imageURLs {
		image := models.PropertyImage{
			PropertyID: property.ID,
			ImageURL:   url,
		}
		if err := db.Create(&image).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrImageInsertFailed, err)
		}
		property.Images = append(property.Images, image)
	}

	return nil
}

// Update - частичное обновление: незаданные поля не трогаются.
// Конкурентные обновления применяются в порядке прихода (last-write-wins).
func (r *propertyRepository) Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Property, error) {
	fields["updated_at"] = time.Now()

	result := db.Model(&models.Property{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPropertyNotFound
	}

	return r.GetByID(db, id)
}

// Deactivate - мягкое удаление. Сохраненные связи пользователей
// с объектом при этом чистятся.
func (r *propertyRepository) Deactivate(db *gorm.DB, id string) error {
	result := db.Model(&models.Property{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return db.Where("property_id = ?", id).Delete(&models.SavedProperty{}).Error
}

func (r *propertyRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Property{}).Count(&count).Error
	return count, err
}

// attachImages догружает картинки одним запросом и раскладывает по объектам
func (r *propertyRepository) attachImages(db *gorm.DB, rows []PropertyWithMeta) error {
	if len(rows) == 0 {
		return nil
	}

	ids := make([]string, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	var images []models.PropertyImage
	if err := db.Where("property_id IN ?", ids).Find(&images).Error; err != nil {
		return err
	}

	byProperty := make(map[string][]models.PropertyImage, len(rows))
	for _, img := range images {
		byProperty[img.PropertyID] = append(byProperty[img.PropertyID], img)
	}

	for i := range rows {
		rows[i].Images = byProperty[rows[i].ID]
	}

	return nil
}
