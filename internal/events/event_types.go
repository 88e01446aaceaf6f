package events

import (
	"encoding/json"
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated         EventType = "user_created"
	EventUserUpdated         EventType = "user_updated"
	EventUserDeleted         EventType = "user_deleted"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketDeleted       EventType = "ticket_deleted"
)

// Event represents a domain event emitted by services. ID and Timestamp are
// filled by the dispatcher when left zero.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserPayload payload for user lifecycle events.
type UserPayload struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID    int    `json:"ticket_id"`
	UserID      int    `json:"user_id"`
	Description string `json:"description"`
}

// TicketStatusChangedPayload payload. Statuses are raw JSON values, matching
// how the API stores them.
type TicketStatusChangedPayload struct {
	TicketID  int             `json:"ticket_id"`
	OldStatus json.RawMessage `json:"old_status"`
	NewStatus json.RawMessage `json:"new_status"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	TicketID int `json:"ticket_id"`
	UserID   int `json:"user_id"`
}
