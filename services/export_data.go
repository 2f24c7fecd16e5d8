package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// QuotationExportData holds all data needed to render a quotation document
// (PDF or Excel).
type QuotationExportData struct {
	QuoNumber       string
	Date            string
	CustomerName    string
	CustomerContact string
	CustomerPhone   string
	ProjectName     string
	ProjectLocation string

	Vendor QuotationExportVendor

	Items []QuotationExportItem

	Totals QuotationTotals

	MemoLines []string
	SignedAt  string
}

// QuotationExportVendor holds the issuing vendor's details for export.
type QuotationExportVendor struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Contact string
	Email   string
	Website string
}

// QuotationExportItem holds a single priced row for export.
type QuotationExportItem struct {
	SINo      int
	Name      string
	Unit      string
	Qty       float64
	Price     float64
	LineTotal float64
	Note      string
}

// BuildQuotationExportData assembles export data from a quotation record.
// The vendor lookup is best-effort: a dangling relation leaves the vendor
// block empty rather than failing the export.
func BuildQuotationExportData(app *pocketbase.PocketBase, quotationId string) (*QuotationExportData, error) {
	q, err := app.FindRecordById("quotations", quotationId)
	if err != nil {
		return nil, fmt.Errorf("quotation not found: %w", err)
	}

	var items []QuotationItem
	if err := q.UnmarshalJSONField("items", &items); err != nil {
		log.Printf("export_data.go: could not parse items of %s: %v", quotationId, err)
		items = nil
	}

	exportItems := make([]QuotationExportItem, 0, len(items))
	for i, item := range items {
		exportItems = append(exportItems, QuotationExportItem{
			SINo:      i + 1,
			Name:      item.Name,
			Unit:      item.Unit,
			Qty:       nz(item.Qty),
			Price:     nz(item.Price),
			LineTotal: nz(item.Price) * nz(item.Qty),
			Note:      item.Note,
		})
	}

	totals := ComputeTotals(items, TotalsOverride{
		Subtotal: q.GetFloat("manual_subtotal"),
		Total:    q.GetFloat("manual_total"),
	})

	vendor := QuotationExportVendor{}
	if vendorID := q.GetString("vendor"); vendorID != "" {
		v, err := app.FindRecordById("vendors", vendorID)
		if err != nil {
			log.Printf("export_data.go: could not find vendor %s: %v", vendorID, err)
		} else {
			vendor = QuotationExportVendor{
				Name:    v.GetString("name"),
				TaxID:   v.GetString("tax_id"),
				Address: v.GetString("address"),
				Phone:   v.GetString("phone"),
				Contact: v.GetString("contact"),
				Email:   v.GetString("email"),
				Website: v.GetString("website"),
			}
		}
	}

	date := ""
	if d := q.GetDateTime("date"); !d.IsZero() {
		date = d.Time().Format("2006-01-02")
	}

	var memoLines []string
	for _, line := range strings.Split(MemoPlainText(q.GetString("memo_html")), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			memoLines = append(memoLines, trimmed)
		}
	}

	return &QuotationExportData{
		QuoNumber:       q.GetString("quo_number"),
		Date:            date,
		CustomerName:    q.GetString("customer_name"),
		CustomerContact: q.GetString("customer_contact"),
		CustomerPhone:   q.GetString("customer_phone"),
		ProjectName:     q.GetString("project_name"),
		ProjectLocation: q.GetString("project_location"),
		Vendor:          vendor,
		Items:           exportItems,
		Totals:          totals,
		MemoLines:       memoLines,
		SignedAt:        q.GetString("signed_at"),
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[\\/?<>:*|"]`)

// ExportFilename builds the download name for a quotation document:
// {customer}-{project}({YYYYMMDD}) with filesystem-unsafe characters
// replaced by underscores. Empty parts get generic fallbacks.
func ExportFilename(customer, project string, now time.Time) string {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		customer = "甲方公司"
	}
	project = strings.TrimSpace(project)
	if project == "" {
		project = "工程報價"
	}

	name := fmt.Sprintf("%s-%s(%s)", customer, project, now.Format("20060102"))
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
