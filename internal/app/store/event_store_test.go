package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func newTestEvents() *EventStore {
	s := NewEventStore()
	s.Add(&models.Event{
		ID: "e1", Title: "Hackathon",
		Date:         time.Date(2024, time.May, 18, 9, 0, 0, 0, time.UTC),
		MaxAttendees: 2, Attendees: []string{"u1"},
	})
	return s
}

func TestEventJoin(t *testing.T) {
	s := newTestEvents()

	event, err := s.Join("u2", "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, event.Attendees)
}

func TestEventJoinUnknownEvent(t *testing.T) {
	s := newTestEvents()

	_, err := s.Join("u1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestEventJoinAlreadyRegistered(t *testing.T) {
	s := newTestEvents()

	_, err := s.Join("u1", "e1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
}

func TestEventJoinFull(t *testing.T) {
	s := newTestEvents()

	_, err := s.Join("u2", "e1")
	require.NoError(t, err)
	_, err = s.Join("u3", "e1")
	assert.ErrorIs(t, err, apperrors.ErrEventFull)
}

// A registered attendee of a full event gets the registration error,
// not the capacity error.
func TestEventJoinRegisteredBeatsFull(t *testing.T) {
	s := NewEventStore()
	s.Add(&models.Event{ID: "e1", Title: "Fireside", MaxAttendees: 1, Attendees: []string{"u1"}})

	_, err := s.Join("u1", "e1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
}
