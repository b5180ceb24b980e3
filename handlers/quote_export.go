package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// HandleQuoteExportPDF handles GET /quote/export/pdf
// Renders the current quote as a PDF download. ?express=1 switches the
// delivery estimate to express mode.
func HandleQuoteExportPDF(store *services.QuoteStore, quoteID string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		express := isExpress(e)
		data := services.BuildQuoteExportData(store.Snapshot(), quoteID, express)

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := sanitizeFilename(services.QuoteFilename(data.QuoteID))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel handles GET /quote/export/excel
func HandleQuoteExportExcel(store *services.QuoteStore, quoteID string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		express := isExpress(e)
		data := services.BuildQuoteExportData(store.Snapshot(), quoteID, express)

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate Excel: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := sanitizeFilename(fmt.Sprintf("Quote_%s.xlsx", data.QuoteID))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

func isExpress(e *core.RequestEvent) bool {
	v := e.Request.URL.Query().Get("express")
	return v == "1" || v == "true"
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
