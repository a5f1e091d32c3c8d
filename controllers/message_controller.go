package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

type MessageController struct {
	messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{messages: messages}
}

func (ctl *MessageController) GetInbox(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	messages, err := ctl.messages.Inbox(c, userID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (ctl *MessageController) GetConversation(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	otherID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	messages, err := ctl.messages.Conversation(c, userID, otherID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Content     string    `json:"content" binding:"required"`
}

func (ctl *MessageController) SendMessage(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	message, err := ctl.messages.Send(c, userID, req.RecipientID, req.Content)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (ctl *MessageController) GetMessage(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	messageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	message, err := ctl.messages.Get(c, userID, messageID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (ctl *MessageController) MarkRead(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	messageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	message, err := ctl.messages.MarkRead(c, userID, messageID)
	if err != nil {
		apperrors.HandleGin(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}
