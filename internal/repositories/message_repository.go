package repositories

import (
	"errors"
	"time"

	"villa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	ListForUser(db *gorm.DB, userID string) ([]models.Message, error)
	MarkRead(db *gorm.DB, messageID, recipientID string) error
	CountUnreadForUser(db *gorm.DB, userID string) (int64, error)
	CountUnreadFromClients(db *gorm.DB) (int64, error)
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

// ListForUser - переписка пользователя в хронологическом порядке
func (r *messageRepository) ListForUser(db *gorm.DB, userID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// MarkRead ставит отметку прочтения. Чужое сообщение пометить нельзя.
func (r *messageRepository) MarkRead(db *gorm.DB, messageID, recipientID string) error {
	now := time.Now()
	result := db.Model(&models.Message{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", messageID, recipientID).
		Update("read_at", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// CountUnreadForUser - непрочитанные сообщения от администрации
func (r *messageRepository) CountUnreadForUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("recipient_id = ? AND read_at IS NULL AND sender_role = ?", userID, models.UserRoleAdmin).
		Count(&count).Error
	return count, err
}

// CountUnreadFromClients - непрочитанные сообщения от клиентов, для админки
func (r *messageRepository) CountUnreadFromClients(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("read_at IS NULL AND sender_role = ?", models.UserRoleClient).
		Count(&count).Error
	return count, err
}
