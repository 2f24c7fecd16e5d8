package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleVendorDelete removes a vendor unless a quotation still uses it.
func HandleVendorDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing vendor ID")
		}

		record, err := app.FindRecordById("vendors", id)
		if err != nil {
			log.Printf("vendor_delete: not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Vendor not found")
		}

		inUse, err := app.FindRecordsByFilter(
			"quotations",
			"vendor = {:vendor}",
			"",
			1,
			0,
			map[string]any{"vendor": id},
		)
		if err != nil {
			log.Printf("vendor_delete: usage check failed for %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if len(inUse) > 0 {
			return jsonError(e, http.StatusConflict, "Vendor is used by existing quotations")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("vendor_delete: error deleting %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, map[string]any{"success": true})
	}
}
