package services

import (
	"villa_backend/internal/models"
	"villa_backend/internal/repositories"
	"villa_backend/internal/services/dto"
	"villa_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ChatService interface {
	Send(db *gorm.DB, userID string, req *dto.SendMessageRequest) ([]models.Message, error)
	ListForUser(db *gorm.DB, userID string) ([]models.Message, error)
	MarkRead(db *gorm.DB, userID, messageID string) error
}

type chatServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	responder   Responder
}

func NewChatService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	responder Responder,
) ChatService {
	return &chatServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		responder:   responder,
	}
}

// Send сохраняет сообщение клиента и сразу ответ поддержки от имени
// первого администратора. Возвращаются оба сообщения в порядке создания.
func (s *chatServiceImpl) Send(db *gorm.DB, userID string, req *dto.SendMessageRequest) ([]models.Message, error) {
	admin, err := s.userRepo.FindFirstAdmin(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	inbound := &models.Message{
		SenderID:   userID,
		SenderRole: models.UserRoleClient,
		Body:       req.Body,
	}
	if err := s.messageRepo.Create(db, inbound); err != nil {
		return nil, apperrors.InternalError(err)
	}

	reply := &models.Message{
		SenderID:    admin.ID,
		RecipientID: &userID,
		SenderRole:  models.UserRoleAdmin,
		Body:        s.responder.Reply(req.Body),
	}
	if err := s.messageRepo.Create(db, reply); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return []models.Message{*inbound, *reply}, nil
}

func (s *chatServiceImpl) ListForUser(db *gorm.DB, userID string) ([]models.Message, error) {
	messages, err := s.messageRepo.ListForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

// MarkRead - отметка прочтения адресатом
func (s *chatServiceImpl) MarkRead(db *gorm.DB, userID, messageID string) error {
	err := s.messageRepo.MarkRead(db, messageID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
