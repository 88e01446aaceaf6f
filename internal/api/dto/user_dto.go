package dto

import "github.com/spec-kit/helpdesk-api/internal/domain"

// UserResponse is the wire shape for a user. Nothing beyond these three
// fields is ever echoed, regardless of what the client sent.
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserResponse maps a domain user to its wire shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

// NewUserListResponse maps users to wire shapes, always yielding a JSON
// array (never null) for the list endpoint.
func NewUserListResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// UserMutationResponse wraps update/delete confirmations.
type UserMutationResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
