package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) FindInbox(ctx context.Context, recipientID uuid.UUID) ([]models.Message, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) FindConversation(ctx context.Context, userID, otherID uuid.UUID) ([]models.Message, error) {
	args := m.Called(ctx, userID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkConversationRead(ctx context.Context, senderID, recipientID uuid.UUID) error {
	args := m.Called(ctx, senderID, recipientID)
	return args.Error(0)
}

func TestMessageSend_RejectsSelf(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	userID := uuid.New()
	_, err := svc.Send(context.Background(), userID, userID, "hi me")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageSend_SenderFromPrincipal(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)
	ctx := context.Background()

	senderID := uuid.New()
	recipientID := uuid.New()
	repo.On("Create", ctx, mock.AnythingOfType("*models.Message")).Return(nil)

	msg, err := svc.Send(ctx, senderID, recipientID, "is the terrier still available?")
	assert.NoError(t, err)
	assert.Equal(t, senderID, msg.SenderID)
	assert.Equal(t, recipientID, msg.RecipientID)
	assert.False(t, msg.Read)
}

func TestMessageGet_VisibleToBothParties(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)
	ctx := context.Background()

	senderID := uuid.New()
	recipientID := uuid.New()
	messageID := uuid.New()
	repo.On("FindByID", ctx, messageID).
		Return(&models.Message{ID: messageID, SenderID: senderID, RecipientID: recipientID}, nil)

	for _, party := range []uuid.UUID{senderID, recipientID} {
		msg, err := svc.Get(ctx, party, messageID)
		assert.NoError(t, err)
		assert.Equal(t, messageID, msg.ID)
	}

	_, err := svc.Get(ctx, uuid.New(), messageID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestMessageGet_AbsenceBeforePermission(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)
	ctx := context.Background()

	messageID := uuid.New()
	repo.On("FindByID", ctx, messageID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(ctx, uuid.New(), messageID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMessageMarkRead_RecipientOnly(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)
	ctx := context.Background()

	senderID := uuid.New()
	recipientID := uuid.New()
	messageID := uuid.New()
	repo.On("FindByID", ctx, messageID).
		Return(&models.Message{ID: messageID, SenderID: senderID, RecipientID: recipientID}, nil)

	// the sender cannot mark their own outgoing message read
	_, err := svc.MarkRead(ctx, senderID, messageID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	repo.On("MarkRead", ctx, messageID).Return(nil)
	msg, err := svc.MarkRead(ctx, recipientID, messageID)
	assert.NoError(t, err)
	assert.True(t, msg.Read)
}

func TestMessageConversation_MarksIncomingRead(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()
	repo.On("FindConversation", ctx, userID, otherID).
		Return([]models.Message{{SenderID: otherID, RecipientID: userID, Content: "ping"}}, nil)
	repo.On("MarkConversationRead", ctx, otherID, userID).Return(nil)

	messages, err := svc.Conversation(ctx, userID, otherID)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	repo.AssertCalled(t, "MarkConversationRead", ctx, otherID, userID)
}
