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

type PropertyService interface {
	List(db *gorm.DB, query *dto.PropertyQuery) ([]repositories.PropertyWithMeta, error)
	GetByID(db *gorm.DB, id string) (*models.Property, error)
	Create(db *gorm.DB, req *dto.CreatePropertyRequest, creatorID string) (*models.Property, error)
	Update(db *gorm.DB, id string, req *dto.UpdatePropertyRequest) (*models.Property, error)
	Delete(db *gorm.DB, id string) error
	Save(db *gorm.DB, userID, propertyID string) error
	Unsave(db *gorm.DB, userID, propertyID string) error
	ListSaved(db *gorm.DB, userID string) ([]models.Property, error)
}

type propertyServiceImpl struct {
	propertyRepo repositories.PropertyRepository
	savedRepo    repositories.SavedPropertyRepository
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	savedRepo repositories.SavedPropertyRepository,
) PropertyService {
	return &propertyServiceImpl{
		propertyRepo: propertyRepo,
		savedRepo:    savedRepo,
	}
}

// List - публичный фильтрованный листинг активных объектов
func (s *propertyServiceImpl) List(db *gorm.DB, query *dto.PropertyQuery) ([]repositories.PropertyWithMeta, error) {
	filter := repositories.PropertyFilter{
		Type:     models.PropertyType(query.Type),
		Status:   models.PropertyStatus(query.Status),
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Location: query.Location,
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	properties, err := s.propertyRepo.List(db, filter, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return properties, nil
}

func (s *propertyServiceImpl) GetByID(db *gorm.DB, id string) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return property, nil
}

// Create создает объект и его картинки. Частичный провал записи картинок
// репортится в лог, но объект не откатывается.
func (s *propertyServiceImpl) Create(db *gorm.DB, req *dto.CreatePropertyRequest, creatorID string) (*models.Property, error) {
	status := models.PropertyStatus(req.Status)
	if status == "" {
		status = models.PropertyStatusAvailable
	}

	amenities, err := json.Marshal(req.Amenities)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	property := &models.Property{
		Title:       req.Title,
		Description: req.Description,
		Type:        models.PropertyType(req.Type),
		Price:       req.Price,
		Location:    req.Location,
		Beds:        req.Beds,
		Baths:       req.Baths,
		Sqft:        req.Sqft,
		Amenities:   datatypes.JSON(amenities),
		Status:      status,
		IsActive:    true,
		CreatedBy:   creatorID,
	}

	if err := s.propertyRepo.Create(db, property, req.Images); err != nil {
		if apperrors.Is(err, repositories.ErrImageInsertFailed) {
			logger.Warn("Property created with incomplete images",
				"property_id", property.ID, "error", err)
			return property, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return property, nil
}

// Update - частичная замена полей, незаданные остаются как были
func (s *propertyServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Beds != nil {
		fields["beds"] = *req.Beds
	}
	if req.Baths != nil {
		fields["baths"] = *req.Baths
	}
	if req.Sqft != nil {
		fields["sqft"] = *req.Sqft
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Amenities != nil {
		amenities, err := json.Marshal(*req.Amenities)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["amenities"] = datatypes.JSON(amenities)
	}

	if len(fields) == 0 {
		return s.GetByID(db, id)
	}

	property, err := s.propertyRepo.Update(db, id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return property, nil
}

func (s *propertyServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.propertyRepo.Deactivate(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Save добавляет объект в сохраненные. Сохранять можно только видимый объект.
func (s *propertyServiceImpl) Save(db *gorm.DB, userID, propertyID string) error {
	if _, err := s.GetByID(db, propertyID); err != nil {
		return err
	}

	if err := s.savedRepo.Save(db, userID, propertyID); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadySaved) {
			return apperrors.ErrAlreadySaved
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *propertyServiceImpl) Unsave(db *gorm.DB, userID, propertyID string) error {
	if err := s.savedRepo.Unsave(db, userID, propertyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *propertyServiceImpl) ListSaved(db *gorm.DB, userID string) ([]models.Property, error) {
	properties, err := s.savedRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return properties, nil
}
