package models

import "time"

// DirectMessage is one message inside a DM conversation.
type DirectMessage struct {
	ID       int       `json:"id"`
	SenderID int       `json:"sender_id"`
	Sender   string    `json:"sender"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

// Conversation is a two-party DM thread between the current user and
// Participant, with a denormalized last-message preview.
type Conversation struct {
	ID            int             `json:"id"`
	Participant   User            `json:"participant"`
	Messages      []DirectMessage `json:"messages"`
	LastMessage   string          `json:"last_message"`
	LastMessageAt time.Time       `json:"last_message_at"`
	UnreadCount   int             `json:"unread_count"`
}
