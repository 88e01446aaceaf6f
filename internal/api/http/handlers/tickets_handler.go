package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/api/dto"
	"github.com/spec-kit/helpdesk-api/internal/service"
	"github.com/spec-kit/helpdesk-api/pkg/util"
)

// TicketsHandler exposes the ticket resource.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// Create handles POST /tickets. Validation order is part of the contract:
// the presence check comes first and attempts no type coercion, so a
// present-but-non-numeric userId (or a 0) passes it and fails user
// resolution with 404 instead.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	body := dto.ParseBody(c.Body())

	if body.Empty("userId") || body.Empty("description") {
		return util.NewValidationError("The fields userId and description are required.")
	}
	description, ok := body.String("description")
	if !ok || description == "" {
		return util.NewValidationError("The fields userId and description are required.")
	}

	userID, ok := body.Int("userId")
	if !ok {
		return util.NewNotFound("User")
	}

	ticket, err := h.tickets.CreateTicket(c.UserContext(), userID, description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(ticket))
}

// List handles GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListTickets(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketListResponse(tickets))
}

// Get handles GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return util.NewNotFound("Ticket")
	}
	ticket, err := h.tickets.GetTicket(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// UpdateStatus handles PUT /tickets/:id/status. The ticket lookup precedes
// body validation, so an unknown id answers 404 even with an empty body.
// The status value itself is stored verbatim; extra fields are dropped.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return util.NewNotFound("Ticket")
	}
	if _, err := h.tickets.GetTicket(c.UserContext(), id); err != nil {
		return err
	}

	body := dto.ParseBody(c.Body())
	if body.Empty("status") {
		return util.NewValidationError("Status is required.")
	}
	status, _ := body.Raw("status")

	ticket, err := h.tickets.UpdateTicketStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(dto.TicketMutationResponse{
		Message: "Ticket status updated successfully.",
		Ticket:  dto.NewTicketResponse(ticket),
	})
}

// Delete handles DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return util.NewNotFound("Ticket")
	}
	ticket, err := h.tickets.DeleteTicket(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.TicketMutationResponse{
		Message: "Ticket deleted successfully.",
		Ticket:  dto.NewTicketResponse(ticket),
	})
}

// parseID reads the :id route param. Anything that is not an integer is
// treated as an unknown id by the callers.
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
