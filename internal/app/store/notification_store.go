package store

import (
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// NotificationStore holds per-user notifications
type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[string]*models.Notification
	order         []string
}

// NewNotificationStore creates an empty notification store
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		notifications: make(map[string]*models.Notification),
	}
}

// Add inserts or replaces a notification record
func (s *NotificationStore) Add(notification *models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notifications[notification.ID]; !exists {
		s.order = append(s.order, notification.ID)
	}
	s.notifications[notification.ID] = copyNotification(notification)
}

// GetByID returns a copy of the notification, or nil when unknown
func (s *NotificationStore) GetByID(id string) *models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notification, ok := s.notifications[id]
	if !ok {
		return nil
	}
	return copyNotification(notification)
}

// ListForUser returns the user's notifications in insertion order
func (s *NotificationStore) ListForUser(userID string) []*models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Notification
	for _, id := range s.order {
		n := s.notifications[id]
		if n.UserID == userID {
			out = append(out, copyNotification(n))
		}
	}
	return out
}

// MarkRead sets the read flag. Marking an already-read notification is
// a no-op, not an error.
func (s *NotificationStore) MarkRead(notificationID string) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[notificationID]
	if !ok {
		return nil, apperrors.ErrNotificationNotFound
	}

	notification.Read = true
	return copyNotification(notification), nil
}

func copyNotification(n *models.Notification) *models.Notification {
	cp := *n
	return &cp
}
