package dto

import (
	"encoding/json"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// TicketResponse is the wire shape for a ticket. Status is passed through
// as the raw JSON value the client stored, so a numeric status round-trips
// as a number.
type TicketResponse struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	Description string          `json:"description"`
	Status      json.RawMessage `json:"status"`
	CreatedAt   string          `json:"createdAt"`
}

// NewTicketResponse maps a domain ticket to its wire shape.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		UserID:      ticket.UserID,
		Description: ticket.Description,
		Status:      ticket.Status,
		CreatedAt:   ticket.CreatedAt,
	}
}

// NewTicketListResponse maps tickets to wire shapes, always yielding a JSON
// array (never null) for the list endpoint.
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, NewTicketResponse(&tickets[i]))
	}
	return out
}

// TicketMutationResponse wraps status-update/delete confirmations.
type TicketMutationResponse struct {
	Message string         `json:"message"`
	Ticket  TicketResponse `json:"ticket"`
}
