package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleItemList returns the autocomplete dictionary sorted by name.
func HandleItemList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("items", "name != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("items: query failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]map[string]any, 0, len(records))
		for _, r := range records {
			items = append(items, map[string]any{
				"id":            r.Id,
				"name":          r.GetString("name"),
				"unit":          r.GetString("unit"),
				"default_price": r.GetFloat("default_price"),
			})
		}

		return jsonOK(e, map[string]any{"items": items})
	}
}

// HandleItemDelete removes one dictionary entry.
func HandleItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing item ID")
		}

		record, err := app.FindRecordById("items", id)
		if err != nil {
			log.Printf("items: not found %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Item not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("items: error deleting %s: %v", id, err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return jsonOK(e, map[string]any{"success": true})
	}
}
