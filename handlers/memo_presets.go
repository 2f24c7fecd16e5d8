package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleMemoPresetList returns all saved note presets sorted by content.
func HandleMemoPresetList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("memo_presets", "content != ''", "content", 0, 0, nil)
		if err != nil {
			log.Printf("memo_presets: query failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		presets := make([]map[string]any, 0, len(records))
		for _, r := range records {
			presets = append(presets, map[string]any{
				"id":      r.Id,
				"content": r.GetString("content"),
			})
		}

		return jsonOK(e, map[string]any{"items": presets})
	}
}

// HandleMemoPresetDelete removes every preset matching the submitted
// content. Presets are addressed by text because the editor works with
// note lines, not record IDs.
func HandleMemoPresetDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		content := strings.TrimSpace(body.Content)
		if content == "" {
			return jsonError(e, http.StatusBadRequest, "Missing preset content")
		}

		records, err := app.FindRecordsByFilter(
			"memo_presets",
			"content = {:content}",
			"",
			0,
			0,
			map[string]any{"content": content},
		)
		if err != nil {
			log.Printf("memo_presets: lookup failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		deleted := 0
		for _, r := range records {
			if err := app.Delete(r); err != nil {
				log.Printf("memo_presets: error deleting %s: %v", r.Id, err)
				return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			deleted++
		}

		return jsonOK(e, map[string]any{"deleted": deleted})
	}
}
