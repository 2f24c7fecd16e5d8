package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/services"
)

// HandleQuotationSave creates or updates a quotation from a multipart
// form. An empty quo_number gets the next daily number allocated. The
// grand total is recomputed on the server so the stored figure always
// matches the line items and overrides. Item dictionary and memo preset
// sync run best-effort after the save.
func HandleQuotationSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(32 << 20); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid form data")
		}

		id := e.Request.PathValue("id")

		var record *core.Record
		if id != "" {
			var err error
			record, err = app.FindRecordById("quotations", id)
			if err != nil {
				log.Printf("quotation_save: not found %s: %v", id, err)
				return jsonError(e, http.StatusNotFound, "Quotation not found")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("quotations")
			if err != nil {
				log.Printf("quotation_save: could not find quotations collection: %v", err)
				return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			record = core.NewRecord(col)
		}

		dateStr := strings.TrimSpace(e.Request.FormValue("date"))
		if dateStr == "" {
			dateStr = time.Now().Format("2006-01-02")
		}

		quoNumber := strings.TrimSpace(e.Request.FormValue("quo_number"))
		if quoNumber == "" {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				date = time.Now()
			}
			quoNumber = services.GenerateQuoteNumber(app, date)
		}

		var items []services.QuotationItem
		itemsJSON := e.Request.FormValue("items")
		if itemsJSON != "" {
			if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
				return jsonError(e, http.StatusBadRequest, "Invalid items payload")
			}
		}

		override := services.TotalsOverride{
			Subtotal: formFloat(e.Request.FormValue("manual_subtotal")),
			Total:    formFloat(e.Request.FormValue("manual_total")),
		}
		// At most one override is active: the subtotal wins, and the losing
		// total must not survive in the record.
		if override.Subtotal > 0 {
			override.Total = 0
		}
		totals := services.ComputeTotals(items, override)

		record.Set("quo_number", quoNumber)
		record.Set("customer_name", strings.TrimSpace(e.Request.FormValue("customer_name")))
		record.Set("customer_contact", strings.TrimSpace(e.Request.FormValue("customer_contact")))
		record.Set("customer_phone", strings.TrimSpace(e.Request.FormValue("customer_phone")))
		record.Set("project_name", strings.TrimSpace(e.Request.FormValue("project_name")))
		record.Set("project_location", strings.TrimSpace(e.Request.FormValue("project_location")))
		record.Set("date", dateStr)
		record.Set("items", itemsJSON)
		record.Set("memo_html", e.Request.FormValue("memo_html"))
		record.Set("vendor", strings.TrimSpace(e.Request.FormValue("vendor")))
		record.Set("manual_subtotal", override.Subtotal)
		record.Set("manual_total", override.Total)
		record.Set("total", totals.PayableTotal())
		record.Set("last_updated", time.Now().UTC().Format(time.RFC3339))

		// Replace the images list with the kept filenames plus any new uploads.
		if kept := e.Request.FormValue("kept_images"); kept != "" || hasUploads(e, "images") {
			var keptNames []string
			if kept != "" {
				if err := json.Unmarshal([]byte(kept), &keptNames); err != nil {
					return jsonError(e, http.StatusBadRequest, "Invalid kept_images payload")
				}
			}

			images := make([]any, 0, len(keptNames))
			for _, name := range keptNames {
				images = append(images, name)
			}

			uploads, err := e.FindUploadedFiles("images")
			if err != nil && err != http.ErrMissingFile {
				log.Printf("quotation_save: could not read image uploads: %v", err)
				return jsonError(e, http.StatusBadRequest, "Invalid image upload")
			}
			for _, f := range uploads {
				images = append(images, f)
			}
			record.Set("images", images)
		}

		if err := app.Save(record); err != nil {
			log.Printf("quotation_save: could not save quotation: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// Dictionary and preset sync must never fail the save.
		if err := services.SyncItemDictionary(app, items); err != nil {
			log.Printf("quotation_save: item dictionary sync failed: %v", err)
		}
		if err := services.SyncMemoPresets(app, record.GetString("memo_html")); err != nil {
			log.Printf("quotation_save: memo preset sync failed: %v", err)
		}

		return jsonOK(e, map[string]any{
			"id":         record.Id,
			"quo_number": record.GetString("quo_number"),
			"total":      totals.PayableTotal(),
		})
	}
}

// formFloat parses a form value as a float, treating blank or malformed
// input as zero.
func formFloat(val string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

// hasUploads reports whether the multipart form carries files under key.
func hasUploads(e *core.RequestEvent, key string) bool {
	if e.Request.MultipartForm == nil {
		return false
	}
	return len(e.Request.MultipartForm.File[key]) > 0
}
