package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated  EventType = "ticket_created"
	EventTicketEdited   EventType = "ticket_edited"
	EventTicketDeleted  EventType = "ticket_deleted"
	EventUserRegistered EventType = "user_registered"
	EventSessionStarted EventType = "session_started"
	EventSessionEnded   EventType = "session_ended"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketPayload carries ticket event details.
type TicketPayload struct {
	TicketID int64  `json:"ticket_id"`
	Title    string `json:"title"`
}

// UserPayload carries account event details.
type UserPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// SessionPayload carries session lifecycle details. The token itself is
// never included.
type SessionPayload struct {
	UserID int64 `json:"user_id"`
}
