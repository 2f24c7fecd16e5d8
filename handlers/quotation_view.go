package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/services"
)

// HandleQuotationView returns the full editable payload for one quotation,
// including its vendor details and file URLs.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quotation_view: not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		return jsonOK(e, quotationPayload(app, record))
	}
}

// HandleQuotationShare serves the read-only share view of a quotation.
// This route is public: the record ID in the link is the only credential.
func HandleQuotationShare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quotation_view: share target not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		return jsonOK(e, quotationPayload(app, record))
	}
}

// quotationPayload assembles the JSON body shared by the edit and share
// views. Totals are recomputed from the stored items so the response
// always carries the display figures and the 大寫 amount.
func quotationPayload(app *pocketbase.PocketBase, record *core.Record) map[string]any {
	var items []services.QuotationItem
	if err := record.UnmarshalJSONField("items", &items); err != nil {
		log.Printf("quotation_view: could not parse items of %s: %v", record.Id, err)
		items = nil
	}

	totals := services.ComputeTotals(items, services.TotalsOverride{
		Subtotal: record.GetFloat("manual_subtotal"),
		Total:    record.GetFloat("manual_total"),
	})

	payload := map[string]any{
		"id":               record.Id,
		"quo_number":       record.GetString("quo_number"),
		"customer_name":    record.GetString("customer_name"),
		"customer_contact": record.GetString("customer_contact"),
		"customer_phone":   record.GetString("customer_phone"),
		"project_name":     record.GetString("project_name"),
		"project_location": record.GetString("project_location"),
		"date":             dateOnly(record),
		"items":            items,
		"memo_html":        record.GetString("memo_html"),
		"manual_subtotal":  record.GetFloat("manual_subtotal"),
		"manual_total":     record.GetFloat("manual_total"),
		"signed_at":        record.GetString("signed_at"),
		// Display figures plus the computed references, so the client can
		// render the superseded values struck through when an override is on.
		"totals": map[string]any{
			"subtotal":            totals.DisplaySubtotal,
			"tax":                 totals.DisplayTax,
			"total":               totals.DisplayTotal,
			"computed_subtotal":   totals.Subtotal,
			"computed_tax":        totals.Tax,
			"computed_total":      totals.Total,
			"payable":             totals.PayableTotal(),
			"total_chinese":       totals.TotalChinese,
			"total_formatted":     services.FormatNTD(totals.PayableTotal()),
			"subtotal_overridden": totals.SubtotalOverridden,
			"total_overridden":    totals.TotalOverridden,
		},
	}

	images := record.GetStringSlice("images")
	imageURLs := make([]map[string]string, 0, len(images))
	for _, name := range images {
		imageURLs = append(imageURLs, map[string]string{
			"name": name,
			"url":  fileURL(record, name),
		})
	}
	payload["images"] = imageURLs

	if sig := record.GetString("signature_client"); sig != "" {
		payload["signature_url"] = fileURL(record, sig)
	}

	if vendorID := record.GetString("vendor"); vendorID != "" {
		payload["vendor"] = vendorID
		v, err := app.FindRecordById("vendors", vendorID)
		if err != nil {
			log.Printf("quotation_view: could not find vendor %s: %v", vendorID, err)
		} else {
			payload["vendor_detail"] = vendorPayload(v)
		}
	}

	return payload
}

// fileURL builds the PocketBase file endpoint path for a stored file.
// QUOTE_APP_URL, when set, prefixes it with the public base URL so share
// links work from other origins.
func fileURL(record *core.Record, filename string) string {
	return fmt.Sprintf("%s/api/files/%s/%s/%s",
		os.Getenv("QUOTE_APP_URL"),
		record.Collection().Name,
		record.Id,
		filename,
	)
}
