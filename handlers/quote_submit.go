package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// HandleQuoteSubmit handles POST /quote/submit
// Runs the simulated submission and returns its acknowledgment. The quote
// state is left untouched regardless of the outcome.
func HandleQuoteSubmit(app *pocketbase.PocketBase, store *services.QuoteStore, quoteID string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		express := isExpress(e)
		data := services.BuildQuoteExportData(store.Snapshot(), quoteID, express)

		result, err := services.SubmitQuote(e.Request.Context(), app, data)
		if err != nil {
			log.Printf("quote_submit: submission failed: %v", err)
			return apiError(e, http.StatusInternalServerError, "Submission failed. Please try again.")
		}

		return e.JSON(http.StatusOK, result)
	}
}
