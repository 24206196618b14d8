package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// EventService defines the interface for event operations
type EventService interface {
	GetAllEvents(search string, page, pageSize int) (*dto.EventListResponse, error)
	GetEventByID(id string) (*dto.EventResponse, error)
	JoinEvent(userID, eventID string) (*dto.JoinEventResponse, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	events *store.EventStore
	users  *store.UserStore
	logger zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(events *store.EventStore, users *store.UserStore, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		events: events,
		users:  users,
		logger: logger,
	}
}

// GetAllEvents retrieves events with optional search and pagination.
// An empty search returns the full list.
func (s *eventServiceImpl) GetAllEvents(search string, page, pageSize int) (*dto.EventListResponse, error) {
	matched := s.events.Search(search)

	start, end := paginateWindow(len(matched), page, pageSize)
	events := make([]dto.EventResponse, 0, end-start)
	for _, e := range matched[start:end] {
		events = append(events, toEventResponse(e))
	}

	return &dto.EventListResponse{
		Events:     events,
		Pagination: paginationInfo(int64(len(matched)), page, pageSize),
	}, nil
}

// GetEventByID retrieves a single event
func (s *eventServiceImpl) GetEventByID(id string) (*dto.EventResponse, error) {
	event := s.events.GetByID(id)
	if event == nil {
		return nil, apperrors.ErrEventNotFound
	}

	resp := toEventResponse(event)
	return &resp, nil
}

// JoinEvent registers the user for the event. Error precedence is
// fixed: unknown event, then duplicate registration, then capacity.
func (s *eventServiceImpl) JoinEvent(userID, eventID string) (*dto.JoinEventResponse, error) {
	if user := s.users.GetByID(userID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	event, err := s.events.Join(userID, eventID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", userID).
		Str("eventId", eventID).
		Int("attendees", len(event.Attendees)).
		Int("maxAttendees", event.MaxAttendees).
		Msg("User registered for event")

	return &dto.JoinEventResponse{
		Message: fmt.Sprintf("Successfully registered for %s", event.Title),
		Event:   toEventResponse(event),
	}, nil
}

func toEventResponse(e *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		Location:     e.Location,
		OrganizerID:  e.OrganizerID,
		MaxAttendees: e.MaxAttendees,
		Attendees:    append([]string(nil), e.Attendees...),
		Image:        e.Image,
	}
}
