package models

import "time"

// Notification is an in-app notice addressed to a single user. Like
// messages, notifications carry a read flag that only ever moves from
// false to true.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	RelatedID string    `json:"relatedId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
