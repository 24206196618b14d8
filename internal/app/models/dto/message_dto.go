package dto

import "time"

// MessageResponse represents a single direct message
type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// MessageListResponse wraps messages for a user
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// ConversationResponse is a derived view grouping messages by
// counterpart. It is not a stored entity.
type ConversationResponse struct {
	CounterpartID string          `json:"counterpartId"`
	LastMessage   MessageResponse `json:"lastMessage"`
	UnreadCount   int             `json:"unreadCount"`
	MessageCount  int             `json:"messageCount"`
}

// ConversationListResponse wraps a user's conversations
type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

// SendMessageRequest carries a new direct message
type SendMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}
