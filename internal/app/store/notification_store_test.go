package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func notificationFixture(id, userID string, read bool) *models.Notification {
	return &models.Notification{
		ID:        id,
		UserID:    userID,
		Type:      "message",
		Message:   "You have a new message",
		Read:      read,
		CreatedAt: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotificationListForUserKeepsInsertionOrder(t *testing.T) {
	s := NewNotificationStore()
	s.Add(notificationFixture("n1", "u1", false))
	s.Add(notificationFixture("n2", "u2", false))
	s.Add(notificationFixture("n3", "u1", true))

	list := s.ListForUser("u1")
	require.Len(t, list, 2)
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, "n3", list[1].ID)

	assert.Empty(t, s.ListForUser("unknown"))
}

func TestNotificationMarkRead(t *testing.T) {
	s := NewNotificationStore()
	s.Add(notificationFixture("n1", "u1", false))

	updated, err := s.MarkRead("n1")
	require.NoError(t, err)
	assert.True(t, updated.Read)

	stored := s.GetByID("n1")
	require.NotNil(t, stored)
	assert.True(t, stored.Read)
}

func TestNotificationMarkReadTwiceIsNoOp(t *testing.T) {
	s := NewNotificationStore()
	s.Add(notificationFixture("n1", "u1", true))

	updated, err := s.MarkRead("n1")
	require.NoError(t, err)
	assert.True(t, updated.Read)
}

func TestNotificationMarkReadUnknown(t *testing.T) {
	s := NewNotificationStore()

	_, err := s.MarkRead("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestNotificationListReturnsCopies(t *testing.T) {
	s := NewNotificationStore()
	s.Add(notificationFixture("n1", "u1", false))

	list := s.ListForUser("u1")
	list[0].Read = true

	stored := s.GetByID("n1")
	assert.False(t, stored.Read)
}
