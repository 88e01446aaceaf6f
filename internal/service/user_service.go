package service

import (
	"context"
	"errors"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	"github.com/spec-kit/helpdesk-api/internal/events"
	"github.com/spec-kit/helpdesk-api/internal/repository"
	"github.com/spec-kit/helpdesk-api/pkg/util"
)

// UserService coordinates user workflows.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// UserUpdateInput carries optional fields for partial updates. A nil field
// means "leave the stored value untouched"; a non-nil empty string is an
// explicit overwrite.
type UserUpdateInput struct {
	Name  *string
	Email *string
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{users: deps.UserRepo, dispatcher: deps.Dispatcher}
}

// CreateUser stores a new user after checking the live-uniqueness rule:
// matching either name or email of any live user is a conflict. Deleted
// users free their pair for reuse.
func (s *UserService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	taken, err := s.users.NameOrEmailTaken(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.NewConflict("A user with this name or email already exists.")
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserCreated, user)
	return user, nil
}

// ListUsers returns all live users in creation order.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("User")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser merges provided fields onto the stored record. Uniqueness is
// not re-checked on update.
func (s *UserService) UpdateUser(ctx context.Context, id int, input UserUpdateInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("User")
		}
		return nil, err
	}
	s.publish(ctx, events.EventUserUpdated, user)
	return user, nil
}

// DeleteUser removes a user. Tickets referencing the user are deliberately
// left alone: the reference is weak and orphaned tickets stay live.
func (s *UserService) DeleteUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("User")
		}
		return nil, err
	}
	s.publish(ctx, events.EventUserDeleted, user)
	return user, nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type: eventType,
		Payload: events.UserPayload{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
		},
	})
}
