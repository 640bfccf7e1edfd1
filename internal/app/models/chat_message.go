package models

import "time"

// ChatMessage defines a peer-to-peer message based on the 'messages' table.
// Messages are append-only; sender and receiver are usernames.
type ChatMessage struct {
	ID        int64     `json:"id" db:"id"`
	Sender    string    `json:"sender" db:"sender"`
	Receiver  string    `json:"receiver" db:"receiver"`
	Message   string    `json:"message" db:"message"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
