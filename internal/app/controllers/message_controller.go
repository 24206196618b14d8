package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/middleware"
)

// MessageController handles messaging operations
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// ListMessages handles retrieving a user's messages
// @Summary List messages
// @Description Retrieves every message the user sent or received
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageListResponse} "Messages retrieved successfully"
// @Router /users/{id}/messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	messages, err := c.messageService.ListForUser(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// ListConversations handles retrieving a user's conversations
// @Summary List conversations
// @Description Groups the user's messages by counterpart with last message and unread count, sorted by recency
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ConversationListResponse} "Conversations retrieved successfully"
// @Router /users/{id}/conversations [get]
func (c *MessageController) ListConversations(ctx *gin.Context) {
	conversations, err := c.messageService.Conversations(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversations))
}

// SendMessage handles sending a direct message
// @Summary Send message
// @Description Stores a new direct message with a generated id and server timestamp
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "New message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Sender or receiver not found"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message, err := c.messageService.SendMessage(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// MarkRead handles marking a message as read
// @Summary Mark message read
// @Description Sets the read flag on a message; marking twice is a no-op
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Message marked read"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{id}/read [post]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	message, err := c.messageService.MarkRead(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message))
}
