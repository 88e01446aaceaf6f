package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	"github.com/spec-kit/helpdesk-api/internal/events"
	"github.com/spec-kit/helpdesk-api/internal/repository"
	"github.com/spec-kit/helpdesk-api/pkg/util"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket stores a new ticket for an existing user. The user reference
// is checked only here; it is never validated again for the ticket's
// lifetime. New tickets open with status "Open".
func (s *TicketService) CreateTicket(ctx context.Context, userID int, description string) (*domain.Ticket, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("User")
		}
		return nil, err
	}

	ticket := &domain.Ticket{
		UserID:      userID,
		Description: description,
		Status:      json.RawMessage(domain.StatusOpen),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:    ticket.ID,
			UserID:      ticket.UserID,
			Description: ticket.Description,
		},
	})
	return ticket, nil
}

// ListTickets returns all live tickets in creation order.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// GetTicket fetches a ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, id int) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("Ticket")
		}
		return nil, err
	}
	return ticket, nil
}

// UpdateTicketStatus stores the given status value verbatim. There is no
// enum and no transition rule: any value reaches any other value, closed
// tickets reopen, numbers stay numbers. Everything else on the ticket is
// immutable.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, id int, status json.RawMessage) (*domain.Ticket, error) {
	current, err := s.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("Ticket")
		}
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type: events.EventTicketStatusChanged,
		Payload: events.TicketStatusChangedPayload{
			TicketID:  ticket.ID,
			OldStatus: current.Status,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// DeleteTicket removes a ticket.
func (s *TicketService) DeleteTicket(ctx context.Context, id int) (*domain.Ticket, error) {
	ticket, err := s.tickets.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("Ticket")
		}
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type: events.EventTicketDeleted,
		Payload: events.TicketDeletedPayload{
			TicketID: ticket.ID,
			UserID:   ticket.UserID,
		},
	})
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
