package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleSignatureUpload stores a customer's signature image on a shared
// quotation and stamps the signing time. This route is public so the
// customer can sign from the share link without a PIN.
func HandleSignatureUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("signature: quotation not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		if err := e.Request.ParseMultipartForm(8 << 20); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		files, err := e.FindUploadedFiles("signature")
		if err != nil || len(files) == 0 {
			return jsonError(e, http.StatusBadRequest, "Missing signature image")
		}

		signedAt := time.Now().UTC().Format(time.RFC3339)
		record.Set("signature_client", files[0])
		record.Set("signed_at", signedAt)

		if err := app.Save(record); err != nil {
			log.Printf("signature: could not save signature on %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, map[string]any{"signed_at": signedAt})
	}
}

// HandleSignatureClear removes the customer signature from a quotation.
// Unlike upload, clearing is an owner action and stays behind the PIN.
func HandleSignatureClear(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("signature: quotation not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		record.Set("signature_client", nil)
		record.Set("signed_at", "")

		if err := app.Save(record); err != nil {
			log.Printf("signature: could not clear signature on %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, map[string]any{"success": true})
	}
}
