package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/repositories"
)

// ChatService handles peer-to-peer messages between any two
// identities, student or instructor.
type ChatService struct {
	chat   repositories.IChatRepository
	logger zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(chat repositories.IChatRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{chat: chat, logger: logger}
}

// Send appends a message. The sender is the validated token subject.
func (s *ChatService) Send(ctx context.Context, sender, receiver, text string) (*models.ChatMessage, error) {
	message := &models.ChatMessage{
		Sender:   sender,
		Receiver: receiver,
		Message:  text,
	}

	if _, err := s.chat.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("sender", sender).Str("receiver", receiver).Msg("chat message stored")
	return message, nil
}

// History returns the full two-way thread between the caller and
// another user, oldest first.
func (s *ChatService) History(ctx context.Context, user, otherUser string) ([]models.ChatMessage, error) {
	return s.chat.History(ctx, user, otherUser)
}
