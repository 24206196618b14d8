package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func newMessageFixture() (MessageService, *store.MessageStore) {
	users := store.NewUserStore()
	users.Add(models.NewUser("u1", "Alex", "alex@example.edu", "Stanford University", "CS", 3, nil, nil))
	users.Add(models.NewUser("u2", "Maya", "maya@example.edu", "UC Berkeley", "CogSci", 2, nil, nil))
	users.Add(models.NewUser("u3", "Jordan", "jordan@example.edu", "MIT", "MechE", 4, nil, nil))

	messages := store.NewMessageStore()
	at := func(h int) time.Time { return time.Date(2024, time.May, 14, h, 0, 0, 0, time.UTC) }
	messages.Add(&models.Message{ID: "m1", SenderID: "u2", ReceiverID: "u1", Content: "hey", Timestamp: at(9), Read: true})
	messages.Add(&models.Message{ID: "m2", SenderID: "u1", ReceiverID: "u2", Content: "hi", Timestamp: at(10), Read: true})
	messages.Add(&models.Message{ID: "m3", SenderID: "u2", ReceiverID: "u1", Content: "free later?", Timestamp: at(11), Read: false})
	messages.Add(&models.Message{ID: "m4", SenderID: "u3", ReceiverID: "u1", Content: "soccer at 5?", Timestamp: at(12), Read: false})

	return NewMessageService(messages, users, zerolog.Nop()), messages
}

func TestConversationsGroupByCounterpart(t *testing.T) {
	svc, _ := newMessageFixture()

	resp, err := svc.Conversations("u1")
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 2)

	// Sorted by last-message time, newest first
	first := resp.Conversations[0]
	assert.Equal(t, "u3", first.CounterpartID)
	assert.Equal(t, 1, first.MessageCount)
	assert.Equal(t, 1, first.UnreadCount)
	assert.Equal(t, "m4", first.LastMessage.ID)

	second := resp.Conversations[1]
	assert.Equal(t, "u2", second.CounterpartID)
	assert.Equal(t, 3, second.MessageCount)
	assert.Equal(t, 1, second.UnreadCount, "only unread messages addressed to the user count")
	assert.Equal(t, "m3", second.LastMessage.ID)
}

func TestConversationsEmptyForUninvolvedUser(t *testing.T) {
	svc, _ := newMessageFixture()

	resp, err := svc.Conversations("u9")
	require.NoError(t, err)
	assert.Empty(t, resp.Conversations)
}

func TestSendMessageValidatesParticipants(t *testing.T) {
	svc, _ := newMessageFixture()

	_, err := svc.SendMessage(&dto.SendMessageRequest{SenderID: "nobody", ReceiverID: "u1", Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.SendMessage(&dto.SendMessageRequest{SenderID: "u1", ReceiverID: "nobody", Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	resp, err := svc.SendMessage(&dto.SendMessageRequest{SenderID: "u1", ReceiverID: "u2", Content: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Read)
}

func TestMarkRead(t *testing.T) {
	svc, _ := newMessageFixture()

	resp, err := svc.MarkRead("m3")
	require.NoError(t, err)
	assert.True(t, resp.Read)

	// Marking an already-read message is a no-op
	resp, err = svc.MarkRead("m3")
	require.NoError(t, err)
	assert.True(t, resp.Read)

	_, err = svc.MarkRead("missing")
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}
