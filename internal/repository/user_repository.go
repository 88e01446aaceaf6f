package repository

import (
	"context"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// UserRepository defines store access for end-users.
type UserRepository interface {
	// Create assigns the next sequential id and stores the user.
	Create(ctx context.Context, user *domain.User) error
	// List returns all live users in creation order.
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user and returns the removed record.
	Delete(ctx context.Context, id int) (*domain.User, error)
	// NameOrEmailTaken reports whether any live user already holds the
	// given name or the given email; either collision counts.
	NameOrEmailTaken(ctx context.Context, name, email string) (bool, error)
}
