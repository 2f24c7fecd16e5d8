package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const quotationPageSize = 50

// allowed history sort keys, mapped to record fields
var quotationSortFields = map[string]string{
	"quo_number":   "quo_number",
	"date":         "date",
	"total":        "total",
	"last_updated": "last_updated",
}

// HandleQuotationList returns a page of quotation summaries for the
// history view. Supports a keyword search over customer and project
// fields, a date range, and a whitelisted sort key.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()

		filter := "quo_number != ''"
		params := map[string]any{}

		if search := strings.TrimSpace(q.Get("search")); search != "" {
			filter += " && (customer_name ~ {:search} || project_name ~ {:search} || project_location ~ {:search})"
			params["search"] = search
		}
		if from := strings.TrimSpace(q.Get("from")); from != "" {
			filter += " && date >= {:from}"
			params["from"] = from + " 00:00:00"
		}
		if to := strings.TrimSpace(q.Get("to")); to != "" {
			filter += " && date <= {:to}"
			params["to"] = to + " 23:59:59"
		}

		sort := "-last_updated"
		if key := q.Get("sort"); key != "" {
			desc := strings.HasPrefix(key, "-")
			field, ok := quotationSortFields[strings.TrimPrefix(key, "-")]
			if ok {
				if desc {
					sort = "-" + field
				} else {
					sort = field
				}
			}
		}

		page := 1
		if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
			page = p
		}

		records, err := app.FindRecordsByFilter(
			"quotations",
			filter,
			sort,
			quotationPageSize,
			(page-1)*quotationPageSize,
			params,
		)
		if err != nil {
			log.Printf("quotation_list: query failed: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		summaries := make([]map[string]any, 0, len(records))
		for _, r := range records {
			summaries = append(summaries, map[string]any{
				"id":               r.Id,
				"quo_number":       r.GetString("quo_number"),
				"customer_name":    r.GetString("customer_name"),
				"project_name":     r.GetString("project_name"),
				"project_location": r.GetString("project_location"),
				"date":             dateOnly(r),
				"total":            r.GetFloat("total"),
				"signed":           r.GetString("signature_client") != "",
			})
		}

		return jsonOK(e, map[string]any{
			"page":      page,
			"page_size": quotationPageSize,
			"items":     summaries,
		})
	}
}

// dateOnly formats a record's date field as YYYY-MM-DD, empty when unset.
func dateOnly(r *core.Record) string {
	d := r.GetDateTime("date")
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("2006-01-02")
}
