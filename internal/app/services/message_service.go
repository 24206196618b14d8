package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// MessageService defines the interface for messaging operations
type MessageService interface {
	ListForUser(userID string) (*dto.MessageListResponse, error)
	Conversations(userID string) (*dto.ConversationListResponse, error)
	SendMessage(req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	MarkRead(messageID string) (*dto.MessageResponse, error)
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messages *store.MessageStore
	users    *store.UserStore
	logger   zerolog.Logger
	now      func() time.Time
}

// NewMessageService creates a new MessageService
func NewMessageService(messages *store.MessageStore, users *store.UserStore, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{
		messages: messages,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// ListForUser returns every message the user sent or received
func (s *messageServiceImpl) ListForUser(userID string) (*dto.MessageListResponse, error) {
	involved := s.messages.ListForUser(userID)

	messages := make([]dto.MessageResponse, 0, len(involved))
	for _, m := range involved {
		messages = append(messages, toMessageResponse(m))
	}

	return &dto.MessageListResponse{Messages: messages}, nil
}

// Conversations groups the user's messages by counterpart. A
// conversation is a derived view: last message, unread count (messages
// addressed to the user and not yet read) and total count, sorted by
// last-message time descending.
func (s *messageServiceImpl) Conversations(userID string) (*dto.ConversationListResponse, error) {
	involved := s.messages.ListForUser(userID)

	type bucket struct {
		last   *models.Message
		unread int
		count  int
	}
	buckets := make(map[string]*bucket)
	var counterparts []string

	for _, m := range involved {
		counterpart := m.Counterpart(userID)
		b, ok := buckets[counterpart]
		if !ok {
			b = &bucket{}
			buckets[counterpart] = b
			counterparts = append(counterparts, counterpart)
		}
		b.count++
		if m.ReceiverID == userID && !m.Read {
			b.unread++
		}
		if b.last == nil || m.Timestamp.After(b.last.Timestamp) {
			b.last = m
		}
	}

	conversations := make([]dto.ConversationResponse, 0, len(counterparts))
	for _, counterpart := range counterparts {
		b := buckets[counterpart]
		conversations = append(conversations, dto.ConversationResponse{
			CounterpartID: counterpart,
			LastMessage:   toMessageResponse(b.last),
			UnreadCount:   b.unread,
			MessageCount:  b.count,
		})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Timestamp.After(conversations[j].LastMessage.Timestamp)
	})

	return &dto.ConversationListResponse{Conversations: conversations}, nil
}

// SendMessage stores a new message with a generated id and server
// timestamp. Both participants must exist.
func (s *messageServiceImpl) SendMessage(req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if user := s.users.GetByID(req.SenderID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user := s.users.GetByID(req.ReceiverID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	message := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Timestamp:  s.now(),
	}
	s.messages.Add(message)

	s.logger.Info().
		Str("messageId", message.ID).
		Str("senderId", message.SenderID).
		Str("receiverId", message.ReceiverID).
		Msg("Message sent")

	resp := toMessageResponse(message)
	return &resp, nil
}

// MarkRead sets the read flag on a message
func (s *messageServiceImpl) MarkRead(messageID string) (*dto.MessageResponse, error) {
	message, err := s.messages.MarkRead(messageID)
	if err != nil {
		return nil, err
	}

	resp := toMessageResponse(message)
	return &resp, nil
}

func toMessageResponse(m *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Timestamp:  m.Timestamp,
		Read:       m.Read,
	}
}
