package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var pinFormat = regexp.MustCompile(`^\d{6}$`)

// HandlePINVerify checks a submitted PIN against the configured one.
// This route is public so the client can unlock the app.
func HandlePINVerify(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			PIN string `json:"pin"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		return jsonOK(e, map[string]any{"valid": body.PIN == CurrentPIN(app)})
	}
}

// HandlePINChange rotates the access PIN. The caller must supply the
// current PIN; the new one must be exactly six digits.
func HandlePINChange(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			OldPIN string `json:"old_pin"`
			NewPIN string `json:"new_pin"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		if body.OldPIN != CurrentPIN(app) {
			return jsonError(e, http.StatusUnauthorized, "Current PIN is incorrect")
		}
		if !pinFormat.MatchString(body.NewPIN) {
			return jsonError(e, http.StatusBadRequest, "PIN must be exactly 6 digits")
		}

		record, err := app.FindFirstRecordByFilter(
			"system_config",
			"key = {:key}",
			map[string]any{"key": "system_pin"},
		)
		if err != nil {
			col, err := app.FindCollectionByNameOrId("system_config")
			if err != nil {
				log.Printf("auth: could not find system_config collection: %v", err)
				return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			record = core.NewRecord(col)
			record.Set("key", "system_pin")
		}

		record.Set("value", body.NewPIN)
		if err := app.Save(record); err != nil {
			log.Printf("auth: could not save new PIN: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, map[string]any{"success": true})
	}
}
