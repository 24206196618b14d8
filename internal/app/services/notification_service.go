package services

import (
	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	ListForUser(userID string) (*dto.NotificationListResponse, error)
	MarkRead(notificationID string) (*dto.NotificationResponse, error)
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notifications *store.NotificationStore
	logger        zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications *store.NotificationStore, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notifications: notifications,
		logger:        logger,
	}
}

// ListForUser returns the user's notifications with an unread count.
// Unknown users have no notifications, not an error.
func (s *notificationServiceImpl) ListForUser(userID string) (*dto.NotificationListResponse, error) {
	records := s.notifications.ListForUser(userID)

	unread := 0
	notifications := make([]dto.NotificationResponse, 0, len(records))
	for _, n := range records {
		if !n.Read {
			unread++
		}
		notifications = append(notifications, toNotificationResponse(n))
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead sets the read flag on a notification
func (s *notificationServiceImpl) MarkRead(notificationID string) (*dto.NotificationResponse, error) {
	notification, err := s.notifications.MarkRead(notificationID)
	if err != nil {
		return nil, err
	}

	resp := toNotificationResponse(notification)
	return &resp, nil
}

func toNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
