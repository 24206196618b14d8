package models

import "time"

// Event represents a campus event with bounded attendance.
// Invariant: len(Attendees) never exceeds MaxAttendees.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	OrganizerID  string    `json:"organizerId"`
	MaxAttendees int       `json:"maxAttendees"`
	Attendees    []string  `json:"attendees"`
	Image        string    `json:"image,omitempty"`
}

// IsAttending reports whether the user id is already registered
func (e *Event) IsAttending(userID string) bool {
	for _, a := range e.Attendees {
		if a == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the event has reached capacity
func (e *Event) IsFull() bool {
	return len(e.Attendees) >= e.MaxAttendees
}
