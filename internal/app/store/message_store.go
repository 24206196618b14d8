package store

import (
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// MessageStore holds direct messages. Conversations are not stored;
// they are derived views computed by the message service.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[string]*models.Message
	order    []string
}

// NewMessageStore creates an empty message store
func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[string]*models.Message),
	}
}

// Add inserts or replaces a message record
func (s *MessageStore) Add(message *models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.messages[message.ID]; !exists {
		s.order = append(s.order, message.ID)
	}
	s.messages[message.ID] = copyMessage(message)
}

// GetByID returns a copy of the message, or nil when unknown
func (s *MessageStore) GetByID(id string) *models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message, ok := s.messages[id]
	if !ok {
		return nil
	}
	return copyMessage(message)
}

// ListForUser returns every message the user sent or received, in
// insertion order
func (s *MessageStore) ListForUser(userID string) []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Message
	for _, id := range s.order {
		m := s.messages[id]
		if m.Involves(userID) {
			out = append(out, copyMessage(m))
		}
	}
	return out
}

// MarkRead sets the read flag. Marking an already-read message is a
// no-op, not an error.
func (s *MessageStore) MarkRead(messageID string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.messages[messageID]
	if !ok {
		return nil, apperrors.ErrMessageNotFound
	}

	message.Read = true
	return copyMessage(message), nil
}

func copyMessage(m *models.Message) *models.Message {
	cp := *m
	return &cp
}
