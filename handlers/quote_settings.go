package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// HandleQuoteSetDiscount handles POST /quote/discount
func HandleQuoteSetDiscount(store *services.QuoteStore) func(*core.RequestEvent) error {
	return setRateHandler(store, func(s *services.QuoteStore, pct float64) services.QuoteSnapshot {
		return s.SetDiscount(pct)
	})
}

// HandleQuoteSetTax handles POST /quote/tax
func HandleQuoteSetTax(store *services.QuoteStore) func(*core.RequestEvent) error {
	return setRateHandler(store, func(s *services.QuoteStore, pct float64) services.QuoteSnapshot {
		return s.SetTax(pct)
	})
}

// setRateHandler parses the percent form value and applies it through the
// given mutator. Rates are not range checked, matching the engine.
func setRateHandler(store *services.QuoteStore, apply func(*services.QuoteStore, float64) services.QuoteSnapshot) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		percent, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("percent")), 64)
		if err != nil {
			return apiError(e, http.StatusBadRequest, "percent must be a number")
		}

		return respondSnapshot(e, http.StatusOK, apply(store, percent))
	}
}

// HandleQuoteSetNotes handles POST /quote/notes
func HandleQuoteSetNotes(store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}
		return respondSnapshot(e, http.StatusOK, store.SetNotes(e.Request.FormValue("notes")))
	}
}

// HandleQuoteSetCurrency handles POST /quote/currency
// Only the display currency changes; stored amounts are never converted.
func HandleQuoteSetCurrency(store *services.QuoteStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		currency, err := services.ParseCurrency(e.Request.FormValue("code"))
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Unknown currency code")
		}

		return respondSnapshot(e, http.StatusOK, store.SetCurrency(currency))
	}
}
