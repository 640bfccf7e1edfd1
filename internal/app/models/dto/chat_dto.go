package dto

import "github.com/studyhub/backend/internal/app/models"

// SendMessageRequest represents an outgoing chat message. The sender
// comes from the validated token, never from the payload.
type SendMessageRequest struct {
	Receiver string `json:"receiver" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// ChatHistoryResponse wraps the two-way message history between the
// caller and another user, ascending by timestamp.
type ChatHistoryResponse struct {
	Response
	Messages []models.ChatMessage `json:"messages"`
}
