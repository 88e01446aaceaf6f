package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-api/internal/api/http"
	"github.com/spec-kit/helpdesk-api/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-api/internal/config"
	"github.com/spec-kit/helpdesk-api/internal/events"
	"github.com/spec-kit/helpdesk-api/internal/observability"
	"github.com/spec-kit/helpdesk-api/internal/persistence"
	"github.com/spec-kit/helpdesk-api/internal/service"
	"github.com/spec-kit/helpdesk-api/internal/worker"
)

// newTestApp wires the full stack against a fresh in-memory store, the same
// way cmd/api does.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	store := persistence.NewMemory(logger)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	userService := service.NewUserService(service.UserDependencies{
		UserRepo:   store.Users(),
		Dispatcher: dispatcher,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: store.Tickets(),
		UserRepo:   store.Users(),
		Dispatcher: dispatcher,
	})
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, config.NotificationConfig{}))

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler("helpdesk-api-test", "test", store),
		Users:   handlers.NewUsersHandler(userService),
		Tickets: handlers.NewTicketsHandler(ticketService),
	})
	return app
}

// doJSON issues a request with a JSON-marshaled body.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doRaw issues a request with a verbatim body and optional Content-Type.
func doRaw(t *testing.T, app *fiber.App, method, path, body, contentType string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeArray(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	var out []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createUser(t *testing.T, app *fiber.App, name, email string) int {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/users", map[string]any{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeObject(t, resp)
	return int(body["id"].(float64))
}

func createTicket(t *testing.T, app *fiber.App, userID int, description string) map[string]any {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/tickets", map[string]any{
		"userId":      userID,
		"description": description,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeObject(t, resp)
}
