package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func newNotificationFixture() NotificationService {
	notifications := store.NewNotificationStore()
	at := func(h int) time.Time { return time.Date(2024, time.May, 15, h, 0, 0, 0, time.UTC) }
	notifications.Add(&models.Notification{ID: "n1", UserID: "u1", Type: "message", Message: "Maya sent you a message", RelatedID: "m3", Read: false, CreatedAt: at(9)})
	notifications.Add(&models.Notification{ID: "n2", UserID: "u1", Type: "event", Message: "Hackathon starts soon", RelatedID: "e1", Read: true, CreatedAt: at(10)})
	notifications.Add(&models.Notification{ID: "n3", UserID: "u2", Type: "community", Message: "New post in AI Enthusiasts", RelatedID: "c1", Read: false, CreatedAt: at(11)})

	return NewNotificationService(notifications, zerolog.Nop())
}

func TestListNotificationsForUser(t *testing.T) {
	svc := newNotificationFixture()

	resp, err := svc.ListForUser("u1")
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, "n1", resp.Notifications[0].ID)
	assert.Equal(t, "n2", resp.Notifications[1].ID)
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestListNotificationsUnknownUserIsEmpty(t *testing.T) {
	svc := newNotificationFixture()

	resp, err := svc.ListForUser("missing")
	require.NoError(t, err)
	assert.NotNil(t, resp.Notifications)
	assert.Empty(t, resp.Notifications)
	assert.Zero(t, resp.UnreadCount)
}

func TestMarkNotificationReadUpdatesUnreadCount(t *testing.T) {
	svc := newNotificationFixture()

	resp, err := svc.MarkRead("n1")
	require.NoError(t, err)
	assert.True(t, resp.Read)

	list, err := svc.ListForUser("u1")
	require.NoError(t, err)
	assert.Zero(t, list.UnreadCount)
}

func TestMarkNotificationReadUnknown(t *testing.T) {
	svc := newNotificationFixture()

	_, err := svc.MarkRead("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}
