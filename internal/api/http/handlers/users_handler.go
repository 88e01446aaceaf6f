package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/api/dto"
	"github.com/spec-kit/helpdesk-api/internal/service"
	"github.com/spec-kit/helpdesk-api/pkg/util"
)

// UsersHandler exposes the user resource.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users. The presence check runs before anything else:
// name and email must both decode to non-empty strings.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	body := dto.ParseBody(c.Body())

	name, okName := body.String("name")
	email, okEmail := body.String("email")
	if !okName || name == "" || !okEmail || email == "" {
		return util.NewValidationError("The fields name and email are required.")
	}

	user, err := h.users.CreateUser(c.UserContext(), name, email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserListResponse(users))
}

// Get handles GET /users/:id. Non-numeric ids resolve to the same 404 as
// unknown ones.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return util.NewNotFound("User")
	}
	user, err := h.users.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Update handles PUT /users/:id. Absent and null fields keep their stored
// values; a client-supplied id is ignored.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return util.NewNotFound("User")
	}

	body := dto.ParseBody(c.Body())
	input := service.UserUpdateInput{}
	if name, ok := body.String("name"); ok {
		input.Name = &name
	}
	if email, ok := body.String("email"); ok {
		input.Email = &email
	}

	user, err := h.users.UpdateUser(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserMutationResponse{
		Message: "User updated successfully.",
		User:    dto.NewUserResponse(user),
	})
}

// Delete handles DELETE /users/:id. Tickets referencing the user survive.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return util.NewNotFound("User")
	}
	user, err := h.users.DeleteUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserMutationResponse{
		Message: "User deleted successfully.",
		User:    dto.NewUserResponse(user),
	})
}
