package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationDelete removes a quotation and its stored files.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quotation_delete: not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotation_delete: error deleting %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, map[string]any{"success": true})
	}
}
