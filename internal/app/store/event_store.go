package store

import (
	"strings"
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// EventStore holds the event directory
type EventStore struct {
	mu     sync.RWMutex
	events map[string]*models.Event
	order  []string
}

// NewEventStore creates an empty event store
func NewEventStore() *EventStore {
	return &EventStore{
		events: make(map[string]*models.Event),
	}
}

// Add inserts or replaces an event record
func (s *EventStore) Add(event *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.ID]; !exists {
		s.order = append(s.order, event.ID)
	}
	s.events[event.ID] = copyEvent(event)
}

// GetByID returns a copy of the event, or nil when unknown
func (s *EventStore) GetByID(id string) *models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil
	}
	return copyEvent(event)
}

// List returns all events in insertion order
func (s *EventStore) List() []*models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyEvent(s.events[id]))
	}
	return out
}

// Search returns events whose title, description or location contains
// the query, case-insensitively. An empty query returns the full list.
func (s *EventStore) Search(query string) []*models.Event {
	if query == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*models.Event
	for _, id := range s.order {
		e := s.events[id]
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Location), q) {
			out = append(out, copyEvent(e))
		}
	}
	return out
}

// Join registers the user for the event. Checks run in a fixed order so
// error precedence is deterministic: unknown event, then duplicate
// registration, then capacity. The capacity check and the append happen
// under one lock, so attendees can never exceed MaxAttendees.
func (s *EventStore) Join(userID, eventID string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}

	if event.IsAttending(userID) {
		return nil, apperrors.ErrAlreadyRegistered
	}

	if event.IsFull() {
		return nil, apperrors.ErrEventFull
	}

	event.Attendees = append(event.Attendees, userID)
	return copyEvent(event), nil
}

func copyEvent(e *models.Event) *models.Event {
	cp := *e
	cp.Attendees = append([]string(nil), e.Attendees...)
	return &cp
}
