package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// jsonOK writes a 200 JSON response.
func jsonOK(e *core.RequestEvent, data any) error {
	return e.JSON(http.StatusOK, data)
}

// jsonError writes a JSON error body with the given status.
func jsonError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]any{"error": message})
}
