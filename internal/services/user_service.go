package services

import (
	"villa_backend/internal/models"
	"villa_backend/internal/repositories"
	"villa_backend/internal/services/dto"
	"villa_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ListClients(db *gorm.DB, filter dto.AdminUserFilter) ([]dto.UserResponse, dto.Pagination, error)
	SetActive(db *gorm.DB, userID string, active bool) error
}

type userServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateProfile меняет только имя, телефон и адрес.
// Email и роль через профиль недоступны.
func (s *userServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}

	if len(fields) == 0 {
		return s.GetProfile(db, userID)
	}

	user, err := s.userRepo.UpdateProfile(db, userID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ListClients - постраничный список клиентов для админки
func (s *userServiceImpl) ListClients(db *gorm.DB, filter dto.AdminUserFilter) ([]dto.UserResponse, dto.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	users, total, err := s.userRepo.FindClients(db, repositories.UserFilter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.Limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return responses, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

// SetActive блокирует или разблокирует аккаунт клиента
func (s *userServiceImpl) SetActive(db *gorm.DB, userID string, active bool) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// Админов этим путем не трогаем
	if user.Role == models.UserRoleAdmin {
		return apperrors.ErrInvalidOperation("user", "Cannot change status of an admin account")
	}

	if err := s.userRepo.UpdateActive(db, userID, active); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}
