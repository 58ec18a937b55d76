package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"tourcrm/services"
)

// HandleQuoteExportJSON downloads the quotation as JSON.
// Route: GET /quotes/{id}/export/json
func HandleQuoteExportJSON(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		data, err := services.ExportJSON(q)
		if err != nil {
			log.Printf("quote_export: failed to marshal quote %s: %v", q.ID, err)
			return e.String(http.StatusInternalServerError, "Failed to export quote")
		}

		return serveQuoteDownload(e, data, "application/json",
			services.ExportFileName(q.SchoolName, time.Now(), ".json"))
	}
}

// HandleQuoteExportExcel downloads the quotation as a spreadsheet.
// Route: GET /quotes/{id}/export/excel
func HandleQuoteExportExcel(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		data, err := services.GenerateQuoteExcel(q)
		if err != nil {
			log.Printf("quote_export: failed to generate Excel for quote %s: %v", q.ID, err)
			return e.String(http.StatusInternalServerError, "Failed to export quote")
		}

		return serveQuoteDownload(e, data,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			services.ExportFileName(q.SchoolName, time.Now(), ".xlsx"))
	}
}

// HandleQuoteExportPDF downloads the quotation as a PDF document.
// Route: GET /quotes/{id}/export/pdf
func HandleQuoteExportPDF(store *QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Get(e.Request.PathValue("id"))
		if q == nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		data, err := services.GenerateQuotePDF(q, time.Now())
		if err != nil {
			log.Printf("quote_export: failed to generate PDF for quote %s: %v", q.ID, err)
			return e.String(http.StatusInternalServerError, "Failed to export quote")
		}

		return serveQuoteDownload(e, data, "application/pdf",
			services.ExportFileName(q.SchoolName, time.Now(), ".pdf"))
	}
}

func serveQuoteDownload(e *core.RequestEvent, data []byte, contentType, filename string) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Write(data)
	return nil
}
