package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/collections"
)

// PINHeader carries the access PIN on protected API requests.
const PINHeader = "X-System-Pin"

// CurrentPIN returns the configured access PIN, falling back to the
// seeded default when the system_config record is missing or empty.
func CurrentPIN(app *pocketbase.PocketBase) string {
	record, err := app.FindFirstRecordByFilter(
		"system_config",
		"key = {:key}",
		map[string]any{"key": "system_pin"},
	)
	if err != nil {
		log.Printf("middleware: system pin not configured, using default: %v", err)
		return collections.DefaultPIN
	}
	if pin := record.GetString("value"); pin != "" {
		return pin
	}
	return collections.DefaultPIN
}

// RequirePIN wraps a handler and rejects requests whose PIN header does
// not match the configured PIN. Share-link routes stay outside this gate.
func RequirePIN(app *pocketbase.PocketBase, next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Request.Header.Get(PINHeader) != CurrentPIN(app) {
			return jsonError(e, http.StatusUnauthorized, "Invalid PIN")
		}
		return next(e)
	}
}
