package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *persistence.Memory
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, store *persistence.Memory) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: store}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The store is in-process, so readiness never
// fails; the counts are exposed for operability.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	users, tickets := h.store.Stats()
	return c.JSON(fiber.Map{
		"status": "ready",
		"store": fiber.Map{
			"users":   users,
			"tickets": tickets,
		},
	})
}
