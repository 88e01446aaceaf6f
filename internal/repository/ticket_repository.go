package repository

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// TicketRepository defines store access for tickets.
type TicketRepository interface {
	// Create assigns the next sequential id and a strictly increasing
	// createdAt timestamp, then stores the ticket.
	Create(ctx context.Context, ticket *domain.Ticket) error
	// List returns all live tickets in creation order.
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int) (*domain.Ticket, error)
	// UpdateStatus replaces the status value verbatim and returns the
	// updated ticket. id, userId, description and createdAt are untouched.
	UpdateStatus(ctx context.Context, id int, status json.RawMessage) (*domain.Ticket, error)
	// Delete removes the ticket and returns the removed record.
	Delete(ctx context.Context, id int) (*domain.Ticket, error)
}
