package dto

import "time"

// EventResponse represents event information returned by the API
type EventResponse struct {
	ID           string    `json:"id" example:"1"`
	Title        string    `json:"title" example:"Spring Hackathon"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location" example:"Engineering Building"`
	OrganizerID  string    `json:"organizerId" example:"2"`
	MaxAttendees int       `json:"maxAttendees" example:"100"`
	Attendees    []string  `json:"attendees"`
	Image        string    `json:"image,omitempty"`
}

// EventListResponse wraps a page of events
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}

// JoinEventRequest identifies the registering user
type JoinEventRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// JoinEventResponse returns the updated event snapshot
type JoinEventResponse struct {
	Message string        `json:"message" example:"Successfully registered for Spring Hackathon"`
	Event   EventResponse `json:"event"`
}
