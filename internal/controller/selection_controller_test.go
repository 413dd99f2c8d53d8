package controller

import (
	"context"
	"testing"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/internal/pkg/serverutils"
	"swimtrack-be/internal/service"
	internalWS "swimtrack-be/internal/websocket"
	"swimtrack-be/pkg/selection"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newSelectionApp(auth fiber.Handler) *fiber.App {
	log := logger.NewNopLogger()
	engine := selection.NewEngine(context.Background(), selection.NewMemoryStore(selection.DefaultStateKey), log)
	hub := internalWS.NewHub(nil, "test", engine.Snapshot(), log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	NewSelectionController(service.NewSelectionService(engine), hub).RegisterRoutes(app.Group("/api"), auth)
	return app
}

func TestSelectionControllerToggle(t *testing.T) {
	app := newSelectionApp(allow)

	tiers := []string{"selected", "super_selected", "unselected"}
	for _, want := range tiers {
		code, body := do(t, app, "POST", "/api/selection/v1/teams/T1/toggle", "")
		assert.Equal(t, 200, code)
		assert.Equal(t, want, body["data"].(map[string]interface{})["tier"])
	}

	code, _ := do(t, app, "POST", "/api/selection/v1/coach/C1/toggle", "")
	assert.Equal(t, 400, code)
}

func TestSelectionControllerClears(t *testing.T) {
	app := newSelectionApp(allow)

	do(t, app, "POST", "/api/selection/v1/meet/M1/toggle", "")
	do(t, app, "POST", "/api/selection/v1/meet/M1/toggle", "")

	code, body := do(t, app, "DELETE", "/api/selection/v1/meet/super", "")
	assert.Equal(t, 200, code)
	super := body["data"].(map[string]interface{})["superSelected"].(map[string]interface{})
	assert.Empty(t, super["meet"])

	do(t, app, "POST", "/api/selection/v1/person/P1/toggle", "")
	code, body = do(t, app, "GET", "/api/selection/v1", "")
	assert.Equal(t, 200, code)
	selected := body["data"].(map[string]interface{})["selected"].(map[string]interface{})
	assert.Equal(t, []interface{}{"P1"}, selected["person"])

	code, _ = do(t, app, "DELETE", "/api/selection/v1/person", "")
	assert.Equal(t, 200, code)

	code, _ = do(t, app, "DELETE", "/api/selection/v1", "")
	assert.Equal(t, 200, code)
}

func TestSelectionControllerWebsocketRequiresUpgrade(t *testing.T) {
	app := newSelectionApp(allow)
	code, _ := do(t, app, "GET", "/api/selection/v1/ws", "")
	assert.Equal(t, fiber.StatusUpgradeRequired, code)
}

func TestSelectionControllerWritesRequireAuth(t *testing.T) {
	app := newSelectionApp(deny)

	for _, req := range []struct{ method, path string }{
		{"POST", "/api/selection/v1/teams/T1/toggle"},
		{"DELETE", "/api/selection/v1/teams/super"},
		{"DELETE", "/api/selection/v1/teams"},
		{"DELETE", "/api/selection/v1"},
	} {
		code, _ := do(t, app, req.method, req.path, "")
		assert.Equal(t, fiber.StatusUnauthorized, code, "%s %s", req.method, req.path)
	}

	code, body := do(t, app, "GET", "/api/selection/v1", "")
	assert.Equal(t, 200, code)
	selected := body["data"].(map[string]interface{})["selected"].(map[string]interface{})
	assert.Empty(t, selected["team"])
}
