package models

import "time"

// Message represents a direct message between two users
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Counterpart returns the other participant of the message relative to
// the given user id.
func (m *Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Involves reports whether the user is sender or receiver
func (m *Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
