package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	"github.com/spec-kit/helpdesk-api/internal/events"
	"github.com/spec-kit/helpdesk-api/internal/persistence"
	"github.com/spec-kit/helpdesk-api/pkg/util"
)

func newTicketFixture(dispatcher events.Dispatcher) (*TicketService, *UserService) {
	store := persistence.NewMemory(zap.NewNop())
	tickets := NewTicketService(TicketDependencies{
		TicketRepo: store.Tickets(),
		UserRepo:   store.Users(),
		Dispatcher: dispatcher,
	})
	users := NewUserService(UserDependencies{UserRepo: store.Users(), Dispatcher: dispatcher})
	return tickets, users
}

func TestCreateTicketRequiresLiveUser(t *testing.T) {
	tickets, users := newTicketFixture(nil)
	ctx := context.Background()

	_, err := tickets.CreateTicket(ctx, 99999, "orphan attempt")
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "User not found.", domainErr.Message)

	user, err := users.CreateUser(ctx, "João Silva", "joao@example.com")
	require.NoError(t, err)

	ticket, err := tickets.CreateTicket(ctx, user.ID, "Sistema lento")
	require.NoError(t, err)
	assert.Equal(t, 1, ticket.ID)
	assert.Equal(t, user.ID, ticket.UserID)
	assert.Equal(t, domain.StatusOpen, string(ticket.Status))
	assert.NotEmpty(t, ticket.CreatedAt)
}

func TestCreateTicketRejectsDeletedUser(t *testing.T) {
	tickets, users := newTicketFixture(nil)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, "Temp", "temp@test.com")
	require.NoError(t, err)
	_, err = users.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	_, err = tickets.CreateTicket(ctx, user.ID, "too late")
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "User not found.", domainErr.Message)
}

func TestUpdateTicketStatusStoresVerbatim(t *testing.T) {
	tickets, users := newTicketFixture(nil)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, "User", "user@test.com")
	require.NoError(t, err)
	ticket, err := tickets.CreateTicket(ctx, user.ID, "desc")
	require.NoError(t, err)

	for _, status := range []string{`"In Progress"`, `"Closed"`, `"Open"`, `123`, `"random"`} {
		updated, err := tickets.UpdateTicketStatus(ctx, ticket.ID, json.RawMessage(status))
		require.NoError(t, err)
		assert.Equal(t, status, string(updated.Status))
		assert.Equal(t, ticket.CreatedAt, updated.CreatedAt)
		assert.Equal(t, ticket.Description, updated.Description)
	}
}

func TestTicketStatusChangeEventCarriesOldAndNew(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	tickets, users := newTicketFixture(dispatcher)
	ctx := context.Background()

	var payloads []events.TicketStatusChangedPayload
	dispatcher.Subscribe(events.EventTicketStatusChanged, func(ctx context.Context, e events.Event) error {
		payloads = append(payloads, e.Payload.(events.TicketStatusChangedPayload))
		return nil
	})

	user, err := users.CreateUser(ctx, "User", "user@test.com")
	require.NoError(t, err)
	ticket, err := tickets.CreateTicket(ctx, user.ID, "desc")
	require.NoError(t, err)

	_, err = tickets.UpdateTicketStatus(ctx, ticket.ID, json.RawMessage(`"Closed"`))
	require.NoError(t, err)

	require.Len(t, payloads, 1)
	assert.Equal(t, `"Open"`, string(payloads[0].OldStatus))
	assert.Equal(t, `"Closed"`, string(payloads[0].NewStatus))
}

func TestDeleteTicketNotFoundMessage(t *testing.T) {
	tickets, _ := newTicketFixture(nil)

	_, err := tickets.DeleteTicket(context.Background(), 7)
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "Ticket not found.", domainErr.Message)
}
