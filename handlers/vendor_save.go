package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleVendorSave creates or updates a vendor from a multipart form.
// A "stamp" file upload replaces the stored company stamp image.
func HandleVendorSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(16 << 20); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		id := e.Request.PathValue("id")

		var record *core.Record
		if id != "" {
			var err error
			record, err = app.FindRecordById("vendors", id)
			if err != nil {
				log.Printf("vendor_save: not found %s: %v", id, err)
				return jsonError(e, http.StatusNotFound, "Vendor not found")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("vendors")
			if err != nil {
				log.Printf("vendor_save: could not find vendors collection: %v", err)
				return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			record = core.NewRecord(col)
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return jsonError(e, http.StatusBadRequest, "Vendor name is required")
		}

		record.Set("name", name)
		record.Set("tax_id", strings.TrimSpace(e.Request.FormValue("tax_id")))
		record.Set("address", strings.TrimSpace(e.Request.FormValue("address")))
		record.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))
		record.Set("contact", strings.TrimSpace(e.Request.FormValue("contact")))
		record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		record.Set("website", strings.TrimSpace(e.Request.FormValue("website")))

		if scale := e.Request.FormValue("stamp_scale"); scale != "" {
			record.Set("stamp_scale", formFloat(scale))
		}

		if hasUploads(e, "stamp") {
			files, err := e.FindUploadedFiles("stamp")
			if err != nil {
				log.Printf("vendor_save: could not read stamp upload: %v", err)
				return jsonError(e, http.StatusBadRequest, "Invalid stamp upload")
			}
			record.Set("stamp", files[0])
		} else if e.Request.FormValue("clear_stamp") == "true" {
			record.Set("stamp", nil)
		}

		if err := app.Save(record); err != nil {
			log.Printf("vendor_save: could not save vendor: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, vendorPayload(record))
	}
}
