package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
)

// ChatController handles chat endpoints. Routes are open to both
// roles; the sender identity always comes from the validated token.
type ChatController struct {
	chatService *services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{chatService: chatService, logger: logger}
}

// Send appends a message from the caller to the named receiver
func (c *ChatController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("receiver and message are required"))
		return
	}

	if _, err := c.chatService.Send(ctx.Request.Context(), middleware.Username(ctx), req.Receiver, req.Message); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Message sent"))
}

// History returns the two-way thread with another user
func (c *ChatController) History(ctx *gin.Context) {
	otherUser := ctx.Query("other_user")
	if otherUser == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("other_user parameter is required"))
		return
	}

	messages, err := c.chatService.History(ctx.Request.Context(), middleware.Username(ctx), otherUser)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if messages == nil {
		messages = []models.ChatMessage{}
	}
	ctx.JSON(http.StatusOK, dto.ChatHistoryResponse{
		Response: dto.OK(""),
		Messages: messages,
	})
}
