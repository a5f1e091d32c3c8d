package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
	"gorm.io/gorm"
)

// MessageService handles user-to-user messages. Every operation derives the
// acting user from the authenticated principal; there is no other identity
// source.
type MessageService struct {
	messages repositories.MessageRepository
}

func NewMessageService(messages repositories.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

func (s *MessageService) Inbox(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	messages, err := s.messages.FindInbox(ctx, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return messages, nil
}

// Conversation returns the exchange with the other user and marks unread
// incoming messages as read.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]models.Message, error) {
	messages, err := s.messages.FindConversation(ctx, userID, otherID)
	if err != nil {
		return nil, storageErr(err)
	}
	if err := s.messages.MarkConversationRead(ctx, otherID, userID); err != nil {
		return nil, storageErr(err)
	}
	return messages, nil
}

func (s *MessageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*models.Message, error) {
	if senderID == recipientID {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, errors.New("cannot send messages to yourself"))
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, storageErr(err)
	}
	return message, nil
}

// Get returns a single message; only the sender and the recipient may view
// it. Absence is reported before the permission check.
func (s *MessageService) Get(ctx context.Context, userID, messageID uuid.UUID) (*models.Message, error) {
	message, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	if message.SenderID != userID && message.RecipientID != userID {
		return nil, apperrors.ErrForbidden
	}
	return message, nil
}

// MarkRead marks an owned (received) message as read.
func (s *MessageService) MarkRead(ctx context.Context, userID, messageID uuid.UUID) (*models.Message, error) {
	message, err := Authorize(ctx, userID,
		func(ctx context.Context) (*models.Message, error) {
			return s.messages.FindByID(ctx, messageID)
		},
		func(m *models.Message) uuid.UUID { return m.RecipientID },
	)
	if err != nil {
		return nil, err
	}

	if err := s.messages.MarkRead(ctx, messageID); err != nil {
		return nil, storageErr(err)
	}
	message.Read = true
	return message, nil
}
