package dto

import "time"

// NotificationResponse represents a single in-app notification
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type" example:"match"`
	Message   string    `json:"message" example:"You have a new interest match"`
	RelatedID string    `json:"relatedId,omitempty" example:"3"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse wraps a user's notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}
