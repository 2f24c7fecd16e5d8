package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/services"
)

// HandleNextQuoteNumber previews the next quotation number for a day.
// The number is not reserved; saving allocates it for real.
func HandleNextQuoteNumber(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		date := time.Now()
		if d := e.Request.URL.Query().Get("date"); d != "" {
			parsed, err := time.Parse("2006-01-02", d)
			if err != nil {
				return jsonError(e, http.StatusBadRequest, "Date must be YYYY-MM-DD")
			}
			date = parsed
		}

		return jsonOK(e, map[string]any{
			"quo_number": services.GenerateQuoteNumber(app, date),
		})
	}
}
