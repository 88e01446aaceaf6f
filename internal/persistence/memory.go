package persistence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	"github.com/spec-kit/helpdesk-api/internal/repository"
)

// Memory is the process-lifetime store backing both resources. Every
// mutation runs under a single mutex, so id issuance is atomic under
// concurrent creates. Ids start at 1 per resource, count independently, and
// are never reused: deleting user 2 and creating another user yields 3.
// Restarting the process resets everything.
type Memory struct {
	mu      sync.Mutex
	users   []domain.User
	tickets []domain.Ticket

	nextUserID   int
	nextTicketID int

	// lastCreatedAt guards ticket timestamps: sequential creates inside
	// the same millisecond still produce strictly increasing createdAt.
	lastCreatedAt time.Time
	now           func() time.Time
}

// NewMemory initializes an empty store.
func NewMemory(logger *zap.Logger) *Memory {
	if logger != nil {
		logger.Info("in-memory store initialized")
	}
	return &Memory{
		nextUserID:   1,
		nextTicketID: 1,
		now:          time.Now,
	}
}

// Users returns the user repository view of the store.
func (m *Memory) Users() repository.UserRepository {
	return &userStore{m}
}

// Tickets returns the ticket repository view of the store.
func (m *Memory) Tickets() repository.TicketRepository {
	return &ticketStore{m}
}

// Stats reports live record counts.
func (m *Memory) Stats() (users, tickets int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), len(m.tickets)
}

func (m *Memory) nextTimestamp() time.Time {
	ts := m.now().UTC().Truncate(time.Millisecond)
	if !ts.After(m.lastCreatedAt) {
		ts = m.lastCreatedAt.Add(time.Millisecond)
	}
	m.lastCreatedAt = ts
	return ts
}

type userStore struct {
	m *Memory
}

func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	user.ID = s.m.nextUserID
	s.m.nextUserID++
	s.m.users = append(s.m.users, *user)
	return nil
}

func (s *userStore) List(ctx context.Context) ([]domain.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	out := make([]domain.User, len(s.m.users))
	copy(out, s.m.users)
	return out, nil
}

func (s *userStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, u := range s.m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *userStore) Update(ctx context.Context, user *domain.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.users {
		if s.m.users[i].ID == user.ID {
			s.m.users[i] = *user
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *userStore) Delete(ctx context.Context, id int) (*domain.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.users {
		if s.m.users[i].ID == id {
			removed := s.m.users[i]
			s.m.users = append(s.m.users[:i], s.m.users[i+1:]...)
			return &removed, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *userStore) NameOrEmailTaken(ctx context.Context, name, email string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, u := range s.m.users {
		if u.Name == name || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type ticketStore struct {
	m *Memory
}

func (s *ticketStore) Create(ctx context.Context, ticket *domain.Ticket) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	ticket.ID = s.m.nextTicketID
	s.m.nextTicketID++
	ticket.CreatedAt = s.m.nextTimestamp().Format(domain.CreatedAtLayout)
	if len(ticket.Status) == 0 {
		ticket.Status = json.RawMessage(domain.StatusOpen)
	}
	s.m.tickets = append(s.m.tickets, *ticket)
	return nil
}

func (s *ticketStore) List(ctx context.Context) ([]domain.Ticket, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	out := make([]domain.Ticket, len(s.m.tickets))
	copy(out, s.m.tickets)
	return out, nil
}

func (s *ticketStore) GetByID(ctx context.Context, id int) (*domain.Ticket, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, t := range s.m.tickets {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ticketStore) UpdateStatus(ctx context.Context, id int, status json.RawMessage) (*domain.Ticket, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.tickets {
		if s.m.tickets[i].ID == id {
			s.m.tickets[i].Status = append(json.RawMessage(nil), status...)
			updated := s.m.tickets[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ticketStore) Delete(ctx context.Context, id int) (*domain.Ticket, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.tickets {
		if s.m.tickets[i].ID == id {
			removed := s.m.tickets[i]
			s.m.tickets = append(s.m.tickets[:i], s.m.tickets[i+1:]...)
			return &removed, nil
		}
	}
	return nil, repository.ErrNotFound
}
