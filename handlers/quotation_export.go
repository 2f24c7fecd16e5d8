package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roadquote/services"
)

// HandleQuotationExportPDF generates and downloads a quotation PDF.
func HandleQuotationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := services.BuildQuotationExportData(app, id)
		if err != nil {
			log.Printf("quotation_export: failed to build data for %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("quotation_export: failed to generate PDF: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := services.ExportFilename(data.CustomerName, data.ProjectName, time.Now()) + ".pdf"

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", contentDisposition(filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuotationExportExcel generates and downloads a quotation workbook.
func HandleQuotationExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return jsonError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := services.BuildQuotationExportData(app, id)
		if err != nil {
			log.Printf("quotation_export: failed to build data for %s: %v", id, err)
			return jsonError(e, http.StatusNotFound, "Quotation not found")
		}

		xlsxBytes, err := services.GenerateQuotationExcel(data)
		if err != nil {
			log.Printf("quotation_export: failed to generate workbook: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to generate workbook")
		}

		filename := services.ExportFilename(data.CustomerName, data.ProjectName, time.Now()) + ".xlsx"

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", contentDisposition(filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// contentDisposition builds an attachment header that survives non-ASCII
// filenames by carrying a UTF-8 encoded variant alongside the plain one.
func contentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		filename, url.PathEscape(filename))
}
