package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
)

// ChatRepository handles database operations for chat messages
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create appends a chat message. Messages are never edited or deleted.
func (r *ChatRepository) Create(ctx context.Context, message *models.ChatMessage) (int64, error) {
	query := `
		INSERT INTO messages (sender, receiver, message)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp
	`

	err := r.db.QueryRow(ctx, query,
		message.Sender,
		message.Receiver,
		message.Message,
	).Scan(&message.ID, &message.Timestamp)

	if err != nil {
		return 0, fmt.Errorf("error creating chat message: %w", err)
	}

	return message.ID, nil
}

// History returns the union of both directions between two users,
// ascending by timestamp, so both participants see the same thread.
func (r *ChatRepository) History(ctx context.Context, userA, userB string) ([]models.ChatMessage, error) {
	query := `
		SELECT id, sender, receiver, message, timestamp
		FROM messages
		WHERE (sender = $1 AND receiver = $2) OR (sender = $2 AND receiver = $1)
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("error querying chat history: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.Sender, &m.Receiver, &m.Message, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning chat message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}

	return messages, nil
}
