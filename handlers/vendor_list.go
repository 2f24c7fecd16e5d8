package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleVendorList returns all vendors sorted by name.
func HandleVendorList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("vendors", "name != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("vendor_list: query failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		vendors := make([]map[string]any, 0, len(records))
		for _, r := range records {
			vendors = append(vendors, vendorPayload(r))
		}

		return jsonOK(e, map[string]any{"items": vendors})
	}
}

// vendorPayload builds the JSON body for one vendor, including the stamp
// image URL when a stamp is stored.
func vendorPayload(r *core.Record) map[string]any {
	payload := map[string]any{
		"id":          r.Id,
		"name":        r.GetString("name"),
		"tax_id":      r.GetString("tax_id"),
		"address":     r.GetString("address"),
		"phone":       r.GetString("phone"),
		"contact":     r.GetString("contact"),
		"email":       r.GetString("email"),
		"website":     r.GetString("website"),
		"stamp_scale": r.GetFloat("stamp_scale"),
	}
	if stamp := r.GetString("stamp"); stamp != "" {
		payload["stamp_url"] = fileURL(r, stamp)
	}
	return payload
}
