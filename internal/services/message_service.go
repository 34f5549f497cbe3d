package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// messageService handles the user inbox.
type messageService struct {
	db *gorm.DB
}

// NewMessageService creates a new MessageServicer.
func NewMessageService(db *gorm.DB) MessageServicer {
	return &messageService{db: db}
}

// ListForUser returns the user's own messages plus all broadcasts, newest first.
func (s *messageService) ListForUser(userID string) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.
		Where("user_id = ? OR type = ?", userID, models.MessageTypeBroadcast).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return messages, nil
}

// SubmitSupport files a support request from the user.
func (s *messageService) SubmitSupport(userID, title, body string) (*models.Message, error) {
	if title == "" || body == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and body are required")
	}

	msg := &models.Message{
		UserID: &userID,
		Type:   models.MessageTypeSupport,
		Title:  title,
		Body:   body,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return msg, nil
}

// MarkRead flags one of the user's own messages as read. Broadcasts and other
// users' messages are not reachable here.
func (s *messageService) MarkRead(userID, messageID string) (*models.Message, error) {
	var msg models.Message
	if err := s.db.Where("id = ? AND user_id = ?", messageID, userID).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&msg).Update("read", true).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &msg, nil
}

// Broadcast publishes a message visible to every user.
func (s *messageService) Broadcast(title, body string) (*models.Message, error) {
	if title == "" || body == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and body are required")
	}

	msg := &models.Message{
		Type:  models.MessageTypeBroadcast,
		Title: title,
		Body:  body,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return msg, nil
}
