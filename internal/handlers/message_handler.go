package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/services"
)

// MessageHandler handles the user inbox.
type MessageHandler struct {
	messageService services.MessageServicer
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService services.MessageServicer) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SupportRequest represents a support message payload
type SupportRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=5000"`
}

// BroadcastRequest represents an admin broadcast payload
type BroadcastRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=5000"`
}

// ListMessages returns the user's inbox
// @Summary     List messages
// @Description The authenticated user's messages plus broadcasts, newest first
// @Tags        messages
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Messages"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	messages, err := h.messageService.ListForUser(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SubmitSupport files a support message
// @Summary     Submit a support message
// @Tags        messages
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SupportRequest true "Support message"
// @Success     201 {object} models.Message "Created message"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /messages/support [post]
func (h *MessageHandler) SubmitSupport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	message, err := h.messageService.SubmitSupport(userID, req.Title, req.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// MarkRead marks a message as read
// @Summary     Mark a message as read
// @Tags        messages
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Message ID"
// @Success     200 {object} models.Message "Updated message"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Message not found"
// @Router      /messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	message, err := h.messageService.MarkRead(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

// Broadcast sends a message to all users
// @Summary     Broadcast a message
// @Description Admin only. Creates a broadcast message visible to every user.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BroadcastRequest true "Broadcast message"
// @Success     201 {object} models.Message "Created broadcast"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Router      /messages/broadcast [post]
func (h *MessageHandler) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	message, err := h.messageService.Broadcast(req.Title, req.Body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}
